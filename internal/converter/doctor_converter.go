package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:                 doctor.ID,
		ReadableID:         doctor.ReadableID,
		FirstName:          doctor.User.FirstName,
		LastName:           doctor.User.LastName,
		Email:              doctor.User.Email,
		JobExecutionNumber: doctor.JobExecutionNumber,
	}

	if len(doctor.Specializations) > 0 {
		response.Specializations = SpecializationsToResponses(doctor.Specializations)
	}

	return response
}

// DoctorsToResponses converts a slice of Doctor entities to DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		resp := DoctorToResponse(&doctor)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// NurseToResponse converts a Nurse entity to NurseResponse DTO
func NurseToResponse(nurse *entity.Nurse) *dto.NurseResponse {
	if nurse == nil {
		return nil
	}

	return &dto.NurseResponse{
		ID:                   nurse.ID,
		ReadableID:           nurse.ReadableID,
		FirstName:            nurse.User.FirstName,
		LastName:             nurse.User.LastName,
		Email:                nurse.User.Email,
		NursingLicenseNumber: nurse.NursingLicenseNumber,
	}
}

// NursesToResponses converts a slice of Nurse entities to DTOs
func NursesToResponses(nurses []entity.Nurse) []dto.NurseResponse {
	responses := make([]dto.NurseResponse, len(nurses))
	for i, nurse := range nurses {
		resp := NurseToResponse(&nurse)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
