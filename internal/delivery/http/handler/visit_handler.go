package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type VisitHandler struct {
	visitUsecase usecase.VisitUsecase
	validator    *validator.CustomValidator
}

func NewVisitHandler(visitUsecase usecase.VisitUsecase, validator *validator.CustomValidator) *VisitHandler {
	return &VisitHandler{
		visitUsecase: visitUsecase,
		validator:    validator,
	}
}

func (h *VisitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeSchedulingError(w, err, "Failed to create visit")
		return
	}

	response.Success(w, http.StatusCreated, "Visit created successfully", visit)
}

func (h *VisitHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseVisitID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeSchedulingError(w, err, "Failed to update visit")
		return
	}

	response.Success(w, http.StatusOK, "Visit updated successfully", visit)
}

func (h *VisitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseVisitID(w, r)
	if !ok {
		return
	}

	if err := h.visitUsecase.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrVisitNotFound):
			response.NotFound(w, "Visit not found")
		case errors.Is(err, usecase.ErrVisitReferenced):
			response.BusinessRuleError(w, usecase.ErrVisitReferenced.Error())
		default:
			response.InternalServerError(w, "Failed to delete visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit deleted successfully", nil)
}

func (h *VisitHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseVisitID(w, r)
	if !ok {
		return
	}

	visit, err := h.visitUsecase.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrVisitNotFound) {
			response.NotFound(w, "Visit not found")
			return
		}
		response.InternalServerError(w, "Failed to get visit")
		return
	}

	response.Success(w, http.StatusOK, "Visit retrieved successfully", visit)
}

func (h *VisitHandler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	page, limit := parsePagination(r)

	query := &dto.VisitListQuery{
		DateFrom:           parseTimeParam(values, "date_from"),
		DateTo:             parseTimeParam(values, "date_to"),
		DurationMin:        parseIntParam(values, "duration_min"),
		DurationMax:        parseIntParam(values, "duration_max"),
		Status:             values.Get("status"),
		PatientPesel:       values.Get("patient_pesel"),
		DoctorJobExecution: values.Get("doctor_job_execution_number"),
		OfficeTypeName:     values.Get("office_type"),
		OfficeFloor:        parseIntParam(values, "office_floor"),
		IsRemote:           parseBoolParam(values, "is_remote"),
		DiseaseName:        values.Get("disease_name"),
		ReadableID:         parseInt64Param(values, "readable_id"),
		Page:               page,
		Limit:              limit,
	}

	visits, err := h.visitUsecase.List(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to list visits")
		return
	}

	meta := &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      visits.Total,
		TotalPages: int((visits.Total + int64(limit) - 1) / int64(limit)),
	}
	response.SuccessWithMeta(w, http.StatusOK, "Visits retrieved successfully", visits, meta)
}

func (h *VisitHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseVisitID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateVisitStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVisitNotFound):
			response.NotFound(w, "Visit not found")
		case errors.Is(err, usecase.ErrInvalidVisitStatus):
			response.Error(w, http.StatusBadRequest, "Invalid visit status", nil)
		default:
			response.InternalServerError(w, "Failed to update visit status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit status updated successfully", visit)
}

// writeSchedulingError maps usecase failures onto the API error shapes:
// field errors as a field-keyed map, business rule violations as an errors
// array, missing rows as 404.
func (h *VisitHandler) writeSchedulingError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		response.ValidationError(w, validationErr.Fields)
		return
	}

	switch {
	case errors.Is(err, usecase.ErrVisitNotFound):
		response.NotFound(w, "Visit not found")
	case errors.Is(err, usecase.ErrVisitLifecycleLocked),
		errors.Is(err, usecase.ErrVisitEditWindowClosed),
		errors.Is(err, usecase.ErrDoctorOverlap),
		errors.Is(err, usecase.ErrOfficeOverlap),
		errors.Is(err, usecase.ErrPatientOverlap),
		errors.Is(err, usecase.ErrConcurrentScheduling):
		response.BusinessRuleError(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

func parseVisitID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
