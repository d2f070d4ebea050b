package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/MikeSquared-Agency/Payoff/internal/service"
)

const maxBodyBytes = 1 << 20

type AnalysisHandler struct {
	analyzer Analyzer
	logger   *slog.Logger
}

func NewAnalysisHandler(a Analyzer, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{analyzer: a, logger: logger}
}

type factorsResponse struct {
	Factors []service.Factor `json:"factors"`
}

func (h *AnalysisHandler) Factors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, factorsResponse{Factors: h.analyzer.Factors()})
}

func (h *AnalysisHandler) Groups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"groups": h.analyzer.Groups()})
}

func (h *AnalysisHandler) Countries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.analyzer.Countries(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"countries": countries})
}

func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req service.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	report, err := h.analyzer.Analyze(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *AnalysisHandler) writeError(w http.ResponseWriter, err error) {
	switch service.Outcome(err) {
	case "empty_input":
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "no entities selected"})
	case "configuration", "schema":
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		h.logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
