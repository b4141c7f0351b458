package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"logstats/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestAppResponseWriter_CapturesStatus(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	appWriter := newAppResponseWriter(recorder, 1)

	appWriter.WriteHeader(http.StatusUnprocessableEntity)

	assert.Equal(t, http.StatusUnprocessableEntity, appWriter.Status())
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestAppResponseWriter_ErrorCode(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Empty(t, appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewNotFoundError("STATS_1404", "missing", nil))
	assert.Equal(t, "STATS_1404", appWriter.ErrorCode())
}
