package handlers

import (
	"net/http"

	"eventpass/internal/models"
	"eventpass/internal/services"
)

// StatsHandler handles the reporting endpoints
type StatsHandler struct {
	statsService services.StatsServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService services.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Stats()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// GetEventStats handles GET /api/stats/events
func (h *StatsHandler) GetEventStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.StatsByEvent()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if stats == nil {
		stats = []*models.EventStats{}
	}
	writeJSON(w, http.StatusOK, stats)
}
