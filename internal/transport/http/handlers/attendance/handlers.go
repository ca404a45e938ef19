package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrmlite/internal/domain/attendance"
	"hrmlite/internal/domain/employee"
	"hrmlite/internal/transport/http/api"
	"hrmlite/internal/transport/http/shared"
)

type Handler struct {
	Service *attendance.Service
}

func NewHandler(service *attendance.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleMark)
		r.Get("/summary/by-employee", h.handleSummary)
		// GET takes the employee business code; PUT/DELETE take the record id.
		// chi requires one wildcard name per segment, hence the shared "ref".
		r.Get("/{ref}", h.handleListByEmployee)
		r.Put("/{ref}", h.handleUpdate)
		r.Delete("/{ref}", h.handleDelete)
	})
}

var statuses = []string{attendance.StatusPresent, attendance.StatusAbsent}

type markPayload struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type updatePayload struct {
	Date   *string `json:"date"`
	Status *string `json:"status"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	v := shared.NewValidator()
	v.Date("start_date", startDate)
	v.Date("end_date", endDate)
	if v.Reject(w) {
		return
	}

	records, err := h.Service.List(r.Context(), startDate, endDate)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list attendance")
		return
	}
	api.Success(w, records)
}

func (h *Handler) handleMark(w http.ResponseWriter, r *http.Request) {
	var payload markPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v := shared.NewValidator()
	v.Required("employee_id", payload.EmployeeID)
	v.Required("date", payload.Date)
	v.Date("date", payload.Date)
	v.Required("status", payload.Status)
	v.Enum("status", payload.Status, statuses)
	if v.Reject(w) {
		return
	}

	created, err := h.Service.Mark(r.Context(), attendance.MarkInput{
		EmployeeCode: payload.EmployeeID,
		Date:         payload.Date,
		Status:       payload.Status,
	})
	if err != nil {
		h.failMutation(w, err)
		return
	}
	api.Created(w, created)
}

func (h *Handler) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "ref")
	records, err := h.Service.ListByEmployeeCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "employee not found")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "failed to list attendance")
		return
	}
	api.Success(w, records)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var payload updatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v := shared.NewValidator()
	if payload.Date != nil {
		v.Required("date", *payload.Date)
		v.Date("date", *payload.Date)
	}
	if payload.Status != nil {
		v.Enum("status", *payload.Status, statuses)
	}
	if v.Reject(w) {
		return
	}

	updated, err := h.Service.Update(r.Context(), id, attendance.UpdateInput{
		Date:   payload.Date,
		Status: payload.Status,
	})
	if err != nil {
		h.failMutation(w, err)
		return
	}
	api.Success(w, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, attendance.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "attendance record not found")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "failed to delete attendance")
		return
	}
	api.NoContent(w)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to build attendance summary")
		return
	}
	api.Success(w, summary)
}

func (h *Handler) failMutation(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, attendance.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyMarked):
		api.Fail(w, http.StatusBadRequest, err.Error())
	default:
		api.Fail(w, http.StatusInternalServerError, "attendance request failed")
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "ref"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid attendance id")
		return 0, false
	}
	return id, true
}
