package app

import (
	"testing"

	"logstats/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveConfig() *configs.Config {
	return &configs.Config{
		Server: configs.ServerConfig{
			Port:              8080,
			ReadHeaderTimeout: 5,
			ReadTimeout:       30,
			WriteTimeout:      60,
			IdleTimeout:       60,
		},
		Log:        configs.LogConfig{Level: "info"},
		Processing: configs.ProcessingConfig{Concurrency: 4},
	}
}

func TestNew_ValidConfig(t *testing.T) {
	application, err := New(serveConfig())
	require.NoError(t, err)
	require.NotNil(t, application)
	assert.Equal(t, ":8080", application.server.Addr)
}

func TestNew_InvalidLogLevel(t *testing.T) {
	cfg := serveConfig()
	cfg.Log.Level = "nope"

	application, err := New(cfg)
	assert.Error(t, err)
	assert.Nil(t, application)
}
