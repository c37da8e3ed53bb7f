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

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

func (h *PrescriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.Create(r.Context(), &req)
	if err != nil {
		var validationErr *usecase.ValidationError
		if errors.As(err, &validationErr) {
			response.ValidationError(w, validationErr.Fields)
			return
		}
		switch {
		case errors.Is(err, usecase.ErrVisitWithParties),
			errors.Is(err, usecase.ErrIncompleteAssociation):
			response.BusinessRuleError(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created successfully", prescription)
}

func (h *PrescriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePrescriptionID(w, r)
	if !ok {
		return
	}

	if err := h.prescriptionUsecase.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPrescriptionNotFound):
			response.NotFound(w, "Prescription not found")
		case errors.Is(err, usecase.ErrPrescriptionNotOwned):
			response.Forbidden(w, usecase.ErrPrescriptionNotOwned.Error())
		default:
			response.InternalServerError(w, "Failed to delete prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription deleted successfully", nil)
}

func (h *PrescriptionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePrescriptionID(w, r)
	if !ok {
		return
	}

	prescription, err := h.prescriptionUsecase.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPrescriptionNotFound) {
			response.NotFound(w, "Prescription not found")
			return
		}
		response.InternalServerError(w, "Failed to get prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription retrieved successfully", prescription)
}

func (h *PrescriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	page, limit := parsePagination(r)

	query := &dto.PrescriptionListQuery{
		IssueDateFrom:      parseTimeParam(values, "issue_date_from"),
		IssueDateTo:        parseTimeParam(values, "issue_date_to"),
		ExpiryDateFrom:     parseTimeParam(values, "expiry_date_from"),
		ExpiryDateTo:       parseTimeParam(values, "expiry_date_to"),
		MedicineName:       values.Get("medicine_name"),
		PatientPesel:       values.Get("patient_pesel"),
		DoctorJobExecution: values.Get("doctor_job_execution_number"),
		VisitID:            parseUUIDParam(values, "visit_id"),
		ReadableID:         parseInt64Param(values, "readable_id"),
		Page:               page,
		Limit:              limit,
	}

	prescriptions, err := h.prescriptionUsecase.List(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to list prescriptions")
		return
	}

	meta := &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      prescriptions.Total,
		TotalPages: int((prescriptions.Total + int64(limit) - 1) / int64(limit)),
	}
	response.SuccessWithMeta(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions, meta)
}

func parsePrescriptionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
