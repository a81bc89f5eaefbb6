package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"driveway/internal/insights/service"
	httputil "driveway/pkg/http"
	"driveway/pkg/logger"
)

type StatsResponse struct {
	TotalQueries    int64            `json:"total_queries"`
	NoResultQueries int64            `json:"no_result_queries"`
	TopLocations    map[string]int64 `json:"top_locations"`
}

type InsightsHandler struct {
	service service.InsightsService
	log     *logger.Logger
}

func NewInsightsHandler(service service.InsightsService, log *logger.Logger) *InsightsHandler {
	return &InsightsHandler{
		service: service,
		log:     log,
	}
}

func (h *InsightsHandler) Stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stats := h.service.Snapshot()

	resp := StatsResponse{
		TotalQueries:    stats.TotalQueries,
		NoResultQueries: stats.NoResultQueries,
		TopLocations:    stats.TopLocations,
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "Stats", "operation", "WriteSuccess", "error", err)
	}
}

func (h *InsightsHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/insights/stats", h.Stats)
}
