package dto

import "github.com/google/uuid"

// Response DTOs for dictionary resources

type DiseaseResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SpecializationResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type MedicineResponse struct {
	ID                uuid.UUID `json:"id"`
	ReadableID        int64     `json:"readable_id"`
	Name              string    `json:"name"`
	Type              string    `json:"type,omitempty"`
	Form              string    `json:"form,omitempty"`
	ActiveIngredients []string  `json:"active_ingredients,omitempty"`
}

type OfficeResponse struct {
	ID         uuid.UUID `json:"id"`
	ReadableID int64     `json:"readable_id"`
	OfficeType string    `json:"office_type"`
	Floor      int       `json:"floor"`
}

type DiseaseListResponse struct {
	Diseases []DiseaseResponse `json:"diseases"`
}

type SpecializationListResponse struct {
	Specializations []SpecializationResponse `json:"specializations"`
}

type MedicineListResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
	Total     int64              `json:"total"`
}

type OfficeListResponse struct {
	Offices []OfficeResponse `json:"offices"`
}
