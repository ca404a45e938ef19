package dashboardhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrmlite/internal/domain/dashboard"
	"hrmlite/internal/transport/http/api"
)

type Handler struct {
	Service *dashboard.Service
}

func NewHandler(service *dashboard.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/stats", h.handleStats)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load dashboard stats")
		return
	}
	api.Success(w, stats)
}
