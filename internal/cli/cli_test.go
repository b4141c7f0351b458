package cli

import (
	"testing"

	"logstats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AllFlagsAndPositionals(t *testing.T) {
	t.Parallel()

	args, err := Parse([]string{
		"--mfip", "--lfip", "--eps", "--bytes",
		"--format", "text",
		"--concurrency", "8",
		"--log-level", "debug",
		"a.log", "b.log", "out.txt",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.log", "b.log"}, args.InputPaths)
	assert.Equal(t, "out.txt", args.OutputPath)
	assert.Equal(t, models.NewMetricSet(
		models.MetricMostFrequentIP,
		models.MetricLeastFrequentIP,
		models.MetricEventsPerSecond,
		models.MetricTotalBytes,
	), args.Metrics)
	assert.Equal(t, "text", args.Format)
	assert.Equal(t, 8, args.Concurrency)
	assert.Equal(t, "debug", args.LogLevel)
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	args, err := Parse([]string{"--bytes", "a.log", "out.json"})
	require.NoError(t, err)

	assert.Equal(t, "json", args.Format)
	assert.Equal(t, 1, args.Concurrency)
	assert.Equal(t, "warn", args.LogLevel)
}

func TestParse_EmptyMetricSetIsNotAnError(t *testing.T) {
	t.Parallel()

	args, err := Parse([]string{"a.log", "out.json"})
	require.NoError(t, err)
	assert.True(t, args.Metrics.IsEmpty())
}

func TestParse_FormatIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	args, err := Parse([]string{"--bytes", "--format", "JSON", "a.log", "out.json"})
	require.NoError(t, err)
	assert.Equal(t, "json", args.Format)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		argv []string
	}{
		{
			name: "no positionals",
			argv: []string{"--bytes"},
		},
		{
			name: "output only",
			argv: []string{"--bytes", "out.json"},
		},
		{
			name: "unknown flag",
			argv: []string{"--nope", "a.log", "out.json"},
		},
		{
			name: "unsupported format",
			argv: []string{"--bytes", "--format", "xml", "a.log", "out.json"},
		},
		{
			name: "zero concurrency",
			argv: []string{"--bytes", "--concurrency", "0", "a.log", "out.json"},
		},
		{
			name: "negative concurrency",
			argv: []string{"--bytes", "--concurrency", "-2", "a.log", "out.json"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			args, err := Parse(tt.argv)
			assert.Error(t, err)
			assert.Nil(t, args)
		})
	}
}

func TestParseServe(t *testing.T) {
	t.Parallel()

	args, err := ParseServe(nil)
	require.NoError(t, err)
	assert.Equal(t, "./configs/configs.yml", args.ConfigPath)

	args, err = ParseServe([]string{"--config", "/etc/logstats/configs.yml"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/logstats/configs.yml", args.ConfigPath)
}
