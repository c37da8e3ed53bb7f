package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO.
// Gender and birth date are derived from the PESEL number.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:          patient.ID,
		ReadableID:  patient.ReadableID,
		FirstName:   patient.User.FirstName,
		LastName:    patient.User.LastName,
		Email:       patient.User.Email,
		Pesel:       patient.Pesel,
		Gender:      patient.Gender(),
		PhoneNumber: patient.PhoneNumber,
	}

	if birthDate := patient.BirthDate(); !birthDate.IsZero() {
		response.BirthDate = &birthDate
	}

	if patient.Address.ID != 0 {
		response.Address = AddressToResponse(&patient.Address)
	}

	return response
}

// PatientsToResponses converts a slice of Patient entities to DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		resp := PatientToResponse(&patient)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// AddressToResponse converts an Address entity to AddressResponse DTO
func AddressToResponse(address *entity.Address) *dto.AddressResponse {
	if address == nil {
		return nil
	}

	return &dto.AddressResponse{
		ID:              address.ID,
		Street:          address.Street,
		HouseNumber:     address.HouseNumber,
		ApartmentNumber: address.ApartmentNumber,
		City:            address.City,
		PostCode:        address.PostCode,
		Country:         address.Country,
	}
}
