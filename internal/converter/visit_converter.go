package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// VisitToResponse converts a Visit entity to VisitResponse DTO
func VisitToResponse(visit *entity.Visit) *dto.VisitResponse {
	if visit == nil {
		return nil
	}

	response := &dto.VisitResponse{
		ID:                visit.ID,
		ReadableID:        visit.ReadableID,
		Date:              visit.Date,
		DurationInMinutes: visit.DurationInMinutes,
		PredictedEndDate:  visit.PredictedEndDate,
		IsRemote:          visit.IsRemote,
		Notes:             visit.Notes,
		Status:            string(visit.Status),
		CreatedAt:         visit.CreatedAt,
	}

	// Include related records if preloaded
	if visit.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&visit.Patient)
	}
	if visit.Doctor.ID != uuid.Nil {
		response.Doctor = DoctorToResponse(&visit.Doctor)
	}
	if visit.Office.ID != uuid.Nil {
		response.Office = OfficeToResponse(&visit.Office)
	}
	if visit.Disease != nil {
		response.Disease = DiseaseToResponse(visit.Disease)
	}

	return response
}

// VisitsToResponses converts a slice of Visit entities to slice of VisitResponse DTOs
func VisitsToResponses(visits []entity.Visit) []dto.VisitResponse {
	responses := make([]dto.VisitResponse, len(visits))
	for i, visit := range visits {
		resp := VisitToResponse(&visit)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
