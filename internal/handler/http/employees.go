package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/internal/service"
	"github.com/MKhiriev/employee-registry/internal/store"
	"github.com/MKhiriev/employee-registry/internal/utils"
	"github.com/MKhiriev/employee-registry/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input models.EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if _, err := h.services.EmployeeService.Create(ctx, input); err != nil {
		switch {
		case errors.Is(err, store.ErrEmployeeAlreadyExists):
			log.Err(err).Msg("employee name/email collision")
			utils.WriteJSON(w, models.MessageResponse{Message: "Employee should have a unique name and email."}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid employee data provided")
			utils.WriteJSON(w, models.MessageResponse{Message: service.ErrInvalidDataProvided.Error()}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during employee creation")
			utils.WriteJSON(w, models.MessageResponse{Message: "An error occurred."}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Employee created successfully!"}, http.StatusCreated)
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.EmployeeFilter{
		Department: r.URL.Query().Get("department"),
		Role:       r.URL.Query().Get("role"),
	}

	// A missing or malformed page parameter falls back to the first page.
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		page = 1
	}

	listing, err := h.services.EmployeeService.List(ctx, filter, page)
	if err != nil {
		log.Err(err).Any("filter", filter).Int("page", page).Msg("unexpected error occurred during employee listing")
		utils.WriteJSON(w, models.MessageResponse{Message: "An error occurred."}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, listing, http.StatusOK)
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// A non-integer id cannot identify any record.
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("non-integer employee id")
		utils.WriteJSON(w, models.MessageResponse{Message: "Employee not found"}, http.StatusNotFound)
		return
	}

	employee, err := h.services.EmployeeService.Get(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmployeeNotFound):
			log.Err(err).Int64("id", id).Msg("employee not found")
			utils.WriteJSON(w, models.MessageResponse{Message: "Employee not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("unexpected error occurred during employee lookup")
			utils.WriteJSON(w, models.MessageResponse{Message: "An error occurred."}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, employee, http.StatusOK)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("non-integer employee id")
		utils.WriteJSON(w, models.MessageResponse{Message: "Employee not found"}, http.StatusNotFound)
		return
	}

	var input models.EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if _, err := h.services.EmployeeService.Update(ctx, id, input); err != nil {
		switch {
		case errors.Is(err, store.ErrEmployeeNotFound):
			log.Err(err).Int64("id", id).Msg("employee not found")
			utils.WriteJSON(w, models.MessageResponse{Message: "Employee not found"}, http.StatusNotFound)
			return
		case errors.Is(err, store.ErrEmployeeAlreadyExists):
			log.Err(err).Int64("id", id).Msg("employee email collision")
			utils.WriteJSON(w, models.MessageResponse{Message: "Error: An employee with this email already exists."}, http.StatusBadRequest)
			return
		default:
			// Incomplete payloads land here too: unlike creation, an update
			// without the name or email key is an internal-class failure.
			log.Err(err).Int64("id", id).Msg("unexpected error occurred during employee update")
			utils.WriteJSON(w, models.MessageResponse{Message: "An error occurred."}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Employee updated successfully!"}, http.StatusOK)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("non-integer employee id")
		utils.WriteJSON(w, models.MessageResponse{Message: "Employee Id not found."}, http.StatusNotFound)
		return
	}

	if err := h.services.EmployeeService.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrEmployeeNotFound):
			log.Err(err).Int64("id", id).Msg("employee not found")
			utils.WriteJSON(w, models.MessageResponse{Message: "Employee Id not found."}, http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("unexpected error occurred during employee deletion")
			utils.WriteJSON(w, models.MessageResponse{Message: "An error occurred"}, http.StatusBadRequest)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Employee deleted successfully!"}, http.StatusOK)
}
