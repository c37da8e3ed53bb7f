package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateVisitRequest struct {
	PatientID         uuid.UUID  `json:"patient_id" validate:"required"`
	DoctorID          uuid.UUID  `json:"doctor_id" validate:"required"`
	OfficeID          uuid.UUID  `json:"office_id" validate:"required"`
	DiseaseID         *uuid.UUID `json:"disease_id" validate:"omitempty"`
	Date              time.Time  `json:"date" validate:"required"`
	DurationInMinutes int        `json:"duration_in_minutes" validate:"required,gte=10,lte=180"`
	IsRemote          bool       `json:"is_remote"`
	Notes             string     `json:"notes" validate:"omitempty,max=500"`
}

type UpdateVisitRequest struct {
	PatientID         uuid.UUID  `json:"patient_id" validate:"required"`
	DoctorID          uuid.UUID  `json:"doctor_id" validate:"required"`
	OfficeID          uuid.UUID  `json:"office_id" validate:"required"`
	DiseaseID         *uuid.UUID `json:"disease_id" validate:"omitempty"`
	Date              time.Time  `json:"date" validate:"required"`
	DurationInMinutes int        `json:"duration_in_minutes" validate:"required,gte=10,lte=180"`
	IsRemote          bool       `json:"is_remote"`
	Notes             string     `json:"notes" validate:"omitempty,max=500"`
}

type UpdateVisitStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled in_progress completed cancelled"`
}

// VisitListQuery carries list filters parsed from query parameters
type VisitListQuery struct {
	DateFrom           *time.Time
	DateTo             *time.Time
	DurationMin        *int
	DurationMax        *int
	Status             string
	PatientPesel       string
	DoctorJobExecution string
	OfficeTypeName     string
	OfficeFloor        *int
	IsRemote           *bool
	DiseaseName        string
	ReadableID         *int64
	Page               int
	Limit              int
}

// Response DTOs

type VisitResponse struct {
	ID                uuid.UUID        `json:"id"`
	ReadableID        int64            `json:"readable_id"`
	Date              time.Time        `json:"date"`
	DurationInMinutes int              `json:"duration_in_minutes"`
	PredictedEndDate  time.Time        `json:"predicted_end_date"`
	IsRemote          bool             `json:"is_remote"`
	Notes             string           `json:"notes,omitempty"`
	Status            string           `json:"status"`
	Patient           *PatientResponse `json:"patient,omitempty"`
	Doctor            *DoctorResponse  `json:"doctor,omitempty"`
	Office            *OfficeResponse  `json:"office,omitempty"`
	Disease           *DiseaseResponse `json:"disease,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
	Total  int64           `json:"total"`
}
