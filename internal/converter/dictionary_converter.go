package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// DiseaseToResponse converts a Disease entity to DiseaseResponse DTO
func DiseaseToResponse(disease *entity.Disease) *dto.DiseaseResponse {
	if disease == nil {
		return nil
	}

	return &dto.DiseaseResponse{
		ID:   disease.ID,
		Name: disease.Name,
	}
}

// DiseasesToResponses converts a slice of Disease entities to DTOs
func DiseasesToResponses(diseases []entity.Disease) []dto.DiseaseResponse {
	responses := make([]dto.DiseaseResponse, len(diseases))
	for i, disease := range diseases {
		responses[i] = *DiseaseToResponse(&disease)
	}
	return responses
}

// SpecializationsToResponses converts Specialization entities to DTOs
func SpecializationsToResponses(specializations []entity.Specialization) []dto.SpecializationResponse {
	responses := make([]dto.SpecializationResponse, len(specializations))
	for i, specialization := range specializations {
		responses[i] = dto.SpecializationResponse{
			ID:   specialization.ID,
			Name: specialization.Name,
		}
	}
	return responses
}

// MedicineToResponse converts a Medicine entity to MedicineResponse DTO
func MedicineToResponse(medicine *entity.Medicine) *dto.MedicineResponse {
	if medicine == nil {
		return nil
	}

	response := &dto.MedicineResponse{
		ID:         medicine.ID,
		ReadableID: medicine.ReadableID,
		Name:       medicine.Name,
		Type:       medicine.Type.Name,
		Form:       medicine.Form.Name,
	}

	for _, ingredient := range medicine.ActiveIngredients {
		response.ActiveIngredients = append(response.ActiveIngredients, ingredient.Name)
	}

	return response
}

// MedicinesToResponses converts a slice of Medicine entities to DTOs
func MedicinesToResponses(medicines []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, len(medicines))
	for i, medicine := range medicines {
		responses[i] = *MedicineToResponse(&medicine)
	}
	return responses
}

// OfficeToResponse converts an Office entity to OfficeResponse DTO
func OfficeToResponse(office *entity.Office) *dto.OfficeResponse {
	if office == nil {
		return nil
	}

	return &dto.OfficeResponse{
		ID:         office.ID,
		ReadableID: office.ReadableID,
		OfficeType: office.OfficeType.Name,
		Floor:      office.Floor,
	}
}

// OfficesToResponses converts a slice of Office entities to DTOs
func OfficesToResponses(offices []entity.Office) []dto.OfficeResponse {
	responses := make([]dto.OfficeResponse, len(offices))
	for i, office := range offices {
		responses[i] = *OfficeToResponse(&office)
	}
	return responses
}
