package entity

import (
	"time"

	"github.com/google/uuid"
)

// PrescriptionFilter is a domain-level filter for querying prescriptions.
type PrescriptionFilter struct {
	IssueDateFrom      *time.Time
	IssueDateTo        *time.Time
	ExpiryDateFrom     *time.Time
	ExpiryDateTo       *time.Time
	MedicineName       string // ILIKE fragment against dosage medicines
	PatientPesel       string // ILIKE fragment
	DoctorJobExecution string // ILIKE fragment
	VisitID            *uuid.UUID
	ReadableID         *int64

	// Visibility narrowing: patients see only their own prescriptions.
	OwnPatientUserID *uuid.UUID
}
