package http

import (
	"encoding/json"
	"io"
	"net/http"

	"logstats/internal/analyzers"
	"logstats/internal/models"
	"logstats/internal/shared/validators"
)

const maxRequestBytes = 1024 * 1024

// AnalyzeRequest is the POST /analyze body: which files to process and which
// metrics to derive. The CLI contract applies here too: metrics must be a
// non-empty subset of the supported set.
type AnalyzeRequest struct {
	InputPaths []string `json:"inputPaths" validate:"required,min=1,dive,required"`
	Metrics    []string `json:"metrics" validate:"required,min=1,dive,oneof=mostFrequentIp leastFrequentIp eventsPerSecond totalBytes"`
}

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type analyzeHandler struct {
	statsService analyzers.StatsService
	validate     *validators.Validate
}

func NewAnalyzeHandler(statsService analyzers.StatsService) AppHttpHandler {
	return &analyzeHandler{
		statsService: statsService,
		validate:     validators.New(),
	}
}

// Handle processes POST /analyze requests.
func (h *analyzeHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req AnalyzeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes)).Decode(&req); err != nil {
		return errInvalidRequestBody(err)
	}
	if err := h.validate.Struct(&req); err != nil {
		return errRequestValidationFailed(err)
	}

	requested := make([]models.Metric, 0, len(req.Metrics))
	for _, name := range req.Metrics {
		// Already constrained by the oneof validation above.
		metric, err := models.ParseMetric(name)
		if err != nil {
			return errRequestValidationFailed(err)
		}
		requested = append(requested, metric)
	}

	summary, err := h.statsService.Analyze(r.Context(), req.InputPaths, models.NewMetricSet(requested...))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(summary)
}
