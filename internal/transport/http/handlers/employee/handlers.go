package employeehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrmlite/internal/domain/employee"
	"hrmlite/internal/transport/http/api"
	"hrmlite/internal/transport/http/shared"
)

type Handler struct {
	Service *employee.Service
}

func NewHandler(service *employee.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Put("/{employeeID}", h.handleUpdate)
		r.Delete("/{employeeID}", h.handleDelete)
	})
}

type createPayload struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type updatePayload struct {
	FullName   *string `json:"full_name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list employees")
		return
	}
	api.Success(w, employees)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v := shared.NewValidator()
	v.Required("full_name", payload.FullName)
	v.Required("email", payload.Email)
	v.Email("email", payload.Email)
	v.Required("department", payload.Department)
	if v.Reject(w) {
		return
	}

	created, err := h.Service.Create(r.Context(), employee.CreateInput{
		EmployeeID: payload.EmployeeID,
		FullName:   payload.FullName,
		Email:      payload.Email,
		Department: payload.Department,
	})
	if err != nil {
		if errors.Is(err, employee.ErrDuplicateCode) {
			api.Fail(w, http.StatusBadRequest, err.Error())
			return
		}
		api.Fail(w, http.StatusInternalServerError, "failed to create employee")
		return
	}
	api.Created(w, created)
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
	if payload.FullName != nil {
		v.Required("full_name", *payload.FullName)
	}
	if payload.Email != nil {
		v.Required("email", *payload.Email)
		v.Email("email", *payload.Email)
	}
	if payload.Department != nil {
		v.Required("department", *payload.Department)
	}
	if v.Reject(w) {
		return
	}

	updated, err := h.Service.Update(r.Context(), id, employee.UpdateInput{
		FullName:   payload.FullName,
		Email:      payload.Email,
		Department: payload.Department,
	})
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "employee not found")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "failed to update employee")
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
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "employee not found")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "failed to delete employee")
		return
	}
	api.NoContent(w)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid employee id")
		return 0, false
	}
	return id, true
}
