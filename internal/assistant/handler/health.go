package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"driveway/pkg/client"
	httputil "driveway/pkg/http"
	"driveway/pkg/logger"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Listings string `json:"listings,omitempty"`
}

type HealthHandler struct {
	listings *client.ListingClient
	log      *logger.Logger
}

func NewHealthHandler(listings *client.ListingClient, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		listings: listings,
		log:      log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.listings.Healthy(); err != nil {
		h.log.Error("Listings service health check failed",
			"error", err,
			"path", r.URL.Path,
		)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unavailable",
			Listings: "error",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:   "ready",
		Listings: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
