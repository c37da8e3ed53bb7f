package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// CreatePrescriptionRequest links the prescription to care context through
// exactly one of: visit_id, or patient_id+doctor_id. The exclusivity rule is
// enforced in the usecase, not by validate tags.
type CreatePrescriptionRequest struct {
	VisitID          *uuid.UUID      `json:"visit_id" validate:"omitempty"`
	PatientID        *uuid.UUID      `json:"patient_id" validate:"omitempty"`
	DoctorID         *uuid.UUID      `json:"doctor_id" validate:"omitempty"`
	PrescriptionCode string          `json:"prescription_code" validate:"required,prescriptioncode"`
	Description      string          `json:"description" validate:"omitempty,max=500"`
	Dosages          []DosageRequest `json:"dosages" validate:"required,min=1,dive"`
}

type DosageRequest struct {
	MedicineID uuid.UUID       `json:"medicine_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	Frequency  string          `json:"frequency" validate:"required,max=100"`
}

// PrescriptionListQuery carries list filters parsed from query parameters
type PrescriptionListQuery struct {
	IssueDateFrom      *time.Time
	IssueDateTo        *time.Time
	ExpiryDateFrom     *time.Time
	ExpiryDateTo       *time.Time
	MedicineName       string
	PatientPesel       string
	DoctorJobExecution string
	VisitID            *uuid.UUID
	ReadableID         *int64
	Page               int
	Limit              int
}

// Response DTOs

type PrescriptionResponse struct {
	ID               uuid.UUID        `json:"id"`
	ReadableID       int64            `json:"readable_id"`
	VisitID          *uuid.UUID       `json:"visit_id,omitempty"`
	PrescriptionCode string           `json:"prescription_code"`
	Description      string           `json:"description,omitempty"`
	IssueDate        string           `json:"issue_date"`
	ExpiryDate       string           `json:"expiry_date"`
	Patient          *PatientResponse `json:"patient,omitempty"`
	Doctor           *DoctorResponse  `json:"doctor,omitempty"`
	Dosages          []DosageResponse `json:"dosages"`
}

type DosageResponse struct {
	ID        int64             `json:"id"`
	Medicine  *MedicineResponse `json:"medicine,omitempty"`
	Amount    decimal.Decimal   `json:"amount"`
	Frequency string            `json:"frequency"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int64                  `json:"total"`
}
