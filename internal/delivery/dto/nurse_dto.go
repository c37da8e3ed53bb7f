package dto

import "github.com/google/uuid"

// Response DTOs

type NurseResponse struct {
	ID                   uuid.UUID `json:"id"`
	ReadableID           int64     `json:"readable_id"`
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	Email                string    `json:"email,omitempty"`
	NursingLicenseNumber string    `json:"nursing_license_number"`
}

type NurseListResponse struct {
	Nurses []NurseResponse `json:"nurses"`
	Total  int64           `json:"total"`
}
