package reportshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrmlite/internal/domain/reports"
	"hrmlite/internal/transport/http/api"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/reports/attendance-summary", h.handleSummaryExport)
}

func (h *Handler) handleSummaryExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	switch format {
	case "", "xlsx":
		data, err := h.Service.SummaryXLSX(r.Context())
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "failed to build summary export")
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="attendance-summary.xlsx"`)
		_, _ = w.Write(data)
	case "pdf":
		data, err := h.Service.SummaryPDF(r.Context())
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "failed to build summary export")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="attendance-summary.pdf"`)
		_, _ = w.Write(data)
	default:
		api.Fail(w, http.StatusBadRequest, "unsupported export format")
	}
}
