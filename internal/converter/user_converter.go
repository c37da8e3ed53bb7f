package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	isActive := true
	if user.IsActive != nil {
		isActive = *user.IsActive
	}

	response := &dto.UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Role:           entity.RoleName(user.RoleID),
		EmailConfirmed: user.EmailConfirmed,
		IsActive:       isActive,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}

	if user.Doctor != nil {
		response.Doctor = DoctorToResponse(user.Doctor)
	}
	if user.Nurse != nil {
		response.Nurse = NurseToResponse(user.Nurse)
	}
	if user.Patient != nil {
		response.Patient = PatientToResponse(user.Patient)
	}

	return response
}
