package dto

import "github.com/google/uuid"

// Request DTOs

type UpdateDoctorRequest struct {
	FirstName         string      `json:"first_name" validate:"required,min=2,max=30"`
	LastName          string      `json:"last_name" validate:"required,min=2,max=30"`
	SpecializationIDs []uuid.UUID `json:"specialization_ids" validate:"omitempty,dive,required"`
}

// Response DTOs

type DoctorResponse struct {
	ID                 uuid.UUID                `json:"id"`
	ReadableID         int64                    `json:"readable_id"`
	FirstName          string                   `json:"first_name"`
	LastName           string                   `json:"last_name"`
	Email              string                   `json:"email,omitempty"`
	JobExecutionNumber string                   `json:"job_execution_number"`
	Specializations    []SpecializationResponse `json:"specializations,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int64            `json:"total"`
}
