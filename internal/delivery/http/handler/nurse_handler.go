package handler

import (
	"errors"
	"net/http"

	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type NurseHandler struct {
	nurseUsecase usecase.NurseUsecase
}

func NewNurseHandler(nurseUsecase usecase.NurseUsecase) *NurseHandler {
	return &NurseHandler{nurseUsecase: nurseUsecase}
}

func (h *NurseHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	nurses, err := h.nurseUsecase.List(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list nurses")
		return
	}

	meta := &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      nurses.Total,
		TotalPages: int((nurses.Total + int64(limit) - 1) / int64(limit)),
	}
	response.SuccessWithMeta(w, http.StatusOK, "Nurses retrieved successfully", nurses, meta)
}

func (h *NurseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid nurse ID", nil)
		return
	}

	nurse, err := h.nurseUsecase.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrNurseNotFound) {
			response.NotFound(w, "Nurse not found")
			return
		}
		response.InternalServerError(w, "Failed to get nurse")
		return
	}

	response.Success(w, http.StatusOK, "Nurse retrieved successfully", nurse)
}
