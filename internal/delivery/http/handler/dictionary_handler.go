package handler

import (
	"errors"
	"net/http"

	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DictionaryHandler struct {
	dictionaryUsecase usecase.DictionaryUsecase
}

func NewDictionaryHandler(dictionaryUsecase usecase.DictionaryUsecase) *DictionaryHandler {
	return &DictionaryHandler{dictionaryUsecase: dictionaryUsecase}
}

func (h *DictionaryHandler) ListDiseases(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	diseases, err := h.dictionaryUsecase.ListDiseases(r.Context(), r.URL.Query().Get("name"), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list diseases")
		return
	}
	response.Success(w, http.StatusOK, "Diseases retrieved successfully", diseases)
}

func (h *DictionaryHandler) GetDisease(w http.ResponseWriter, r *http.Request) {
	id, ok := parseDictionaryID(w, r)
	if !ok {
		return
	}
	disease, err := h.dictionaryUsecase.GetDisease(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrDiseaseNotFound) {
			response.NotFound(w, "Disease not found")
			return
		}
		response.InternalServerError(w, "Failed to get disease")
		return
	}
	response.Success(w, http.StatusOK, "Disease retrieved successfully", disease)
}

func (h *DictionaryHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	medicines, err := h.dictionaryUsecase.ListMedicines(r.Context(), r.URL.Query().Get("name"), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list medicines")
		return
	}
	response.Success(w, http.StatusOK, "Medicines retrieved successfully", medicines)
}

func (h *DictionaryHandler) GetMedicine(w http.ResponseWriter, r *http.Request) {
	id, ok := parseDictionaryID(w, r)
	if !ok {
		return
	}
	medicine, err := h.dictionaryUsecase.GetMedicine(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrMedicineNotFound) {
			response.NotFound(w, "Medicine not found")
			return
		}
		response.InternalServerError(w, "Failed to get medicine")
		return
	}
	response.Success(w, http.StatusOK, "Medicine retrieved successfully", medicine)
}

func (h *DictionaryHandler) ListOffices(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	values := r.URL.Query()
	offices, err := h.dictionaryUsecase.ListOffices(r.Context(), values.Get("office_type"), parseIntParam(values, "floor"), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list offices")
		return
	}
	response.Success(w, http.StatusOK, "Offices retrieved successfully", offices)
}

func (h *DictionaryHandler) GetOffice(w http.ResponseWriter, r *http.Request) {
	id, ok := parseDictionaryID(w, r)
	if !ok {
		return
	}
	office, err := h.dictionaryUsecase.GetOffice(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrOfficeNotFound) {
			response.NotFound(w, "Office not found")
			return
		}
		response.InternalServerError(w, "Failed to get office")
		return
	}
	response.Success(w, http.StatusOK, "Office retrieved successfully", office)
}

func (h *DictionaryHandler) ListSpecializations(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	specializations, err := h.dictionaryUsecase.ListSpecializations(r.Context(), r.URL.Query().Get("name"), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list specializations")
		return
	}
	response.Success(w, http.StatusOK, "Specializations retrieved successfully", specializations)
}

func (h *DictionaryHandler) GetSpecialization(w http.ResponseWriter, r *http.Request) {
	id, ok := parseDictionaryID(w, r)
	if !ok {
		return
	}
	specialization, err := h.dictionaryUsecase.GetSpecialization(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrSpecializationNotFound) {
			response.NotFound(w, "Specialization not found")
			return
		}
		response.InternalServerError(w, "Failed to get specialization")
		return
	}
	response.Success(w, http.StatusOK, "Specialization retrieved successfully", specialization)
}

func parseDictionaryID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
