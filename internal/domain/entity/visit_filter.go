package entity

import (
	"time"

	"github.com/google/uuid"
)

// VisitFilter is a domain-level filter for querying visits.
// Used by repository layer to avoid coupling with delivery DTOs.
type VisitFilter struct {
	DateFrom           *time.Time
	DateTo             *time.Time
	DurationMin        *int
	DurationMax        *int
	Status             VisitStatus
	PatientPesel       string // ILIKE fragment
	DoctorJobExecution string // ILIKE fragment
	OfficeTypeName     string // ILIKE fragment
	OfficeFloor        *int
	IsRemote           *bool
	DiseaseName        string // ILIKE fragment
	ReadableID         *int64

	// Visibility narrowing: when set, only rows whose patient/doctor user
	// matches are returned. Set by the usecase from the requester's role.
	OwnPatientUserID *uuid.UUID
	OwnDoctorUserID  *uuid.UUID
}
