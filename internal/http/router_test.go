package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"logstats/internal/analyzers/mocks"
	"logstats/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRouter_PostAnalyze_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	statsService := mocks.NewMockStatsService(ctrl)

	total := int64(500)
	statsService.EXPECT().
		Analyze(gomock.Any(), []string{"/logs/a.log"}, models.NewMetricSet(models.MetricTotalBytes)).
		Return(&models.Summary{
			Requested:  models.NewMetricSet(models.MetricTotalBytes),
			TotalBytes: &total,
		}, nil)

	router := NewRouter(statsService, zerolog.Nop())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/analyze",
		strings.NewReader(`{"inputPaths": ["/logs/a.log"], "metrics": ["totalBytes"]}`))
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalBytes": 500}`, w.Body.String())
}

func TestRouter_PostAnalyze_ValidationError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	router := NewRouter(mocks.NewMockStatsService(ctrl), zerolog.Nop())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/analyze",
		strings.NewReader(`{"inputPaths": [], "metrics": []}`))
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, codeRequestValidationFailed, resp.ErrorCode)
	assert.NotEmpty(t, resp.RequestID, "middleware must assign a request ID")
}

func TestRouter_GetMetrics(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	router := NewRouter(mocks.NewMockStatsService(ctrl), zerolog.Nop())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
}
