package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"driveway/internal/assistant/service"
	httputil "driveway/pkg/http"
	"driveway/pkg/logger"
)

type QueryRequest struct {
	Query string `json:"query"`
}

type QueryResponse struct {
	Answer     string `json:"answer"`
	Location   string `json:"location"`
	Date       string `json:"date"`
	MatchCount int    `json:"match_count"`
}

type AssistantHandler struct {
	service service.AssistantService
	log     *logger.Logger
}

func NewAssistantHandler(service service.AssistantService, log *logger.Logger) *AssistantHandler {
	return &AssistantHandler{
		service: service,
		log:     log,
	}
}

func (h *AssistantHandler) Query(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Query", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	req.Query = strings.TrimSpace(req.Query)

	resolution, err := h.service.Answer(r.Context(), req.Query)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Query", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	resp := QueryResponse{
		Answer:     resolution.Answer,
		Location:   resolution.Location,
		Date:       resolution.Date.Format("2006-01-02"),
		MatchCount: len(resolution.Matches),
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "Query", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AssistantHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/assistant/query", h.Query)
}
