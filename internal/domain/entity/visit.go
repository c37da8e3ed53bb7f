package entity

import (
	"time"

	"github.com/google/uuid"
)

// VisitStatus represents the lifecycle status of a visit
type VisitStatus string

const (
	VisitStatusScheduled  VisitStatus = "scheduled"
	VisitStatusInProgress VisitStatus = "in_progress"
	VisitStatusCompleted  VisitStatus = "completed"
	VisitStatusCancelled  VisitStatus = "cancelled"
)

// ValidVisitStatus reports whether s is a known status value
func ValidVisitStatus(s VisitStatus) bool {
	switch s {
	case VisitStatusScheduled, VisitStatusInProgress, VisitStatusCompleted, VisitStatusCancelled:
		return true
	}
	return false
}

// Visit duration bounds in minutes
const (
	VisitMinDurationMinutes = 10
	VisitMaxDurationMinutes = 180
)

// EditLockWindow is the period before the scheduled start during which a visit
// can no longer be modified.
const EditLockWindow = 24 * time.Hour

// Visit represents a scheduled appointment between a patient and a doctor in an office
type Visit struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReadableID        int64       `gorm:"uniqueIndex;not null" json:"readable_id"`
	PatientID         uuid.UUID   `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID          uuid.UUID   `gorm:"type:uuid;not null;index" json:"doctor_id"`
	OfficeID          uuid.UUID   `gorm:"type:uuid;not null;index" json:"office_id"`
	DiseaseID         *uuid.UUID  `gorm:"type:uuid;index" json:"disease_id,omitempty"`
	Date              time.Time   `gorm:"not null;index" json:"date"`
	DurationInMinutes int         `gorm:"not null" json:"duration_in_minutes"`
	PredictedEndDate  time.Time   `gorm:"not null" json:"predicted_end_date"`
	IsRemote          bool        `gorm:"not null;default:false" json:"is_remote"`
	Notes             string      `gorm:"type:varchar(500)" json:"notes,omitempty"`
	Status            VisitStatus `gorm:"type:visit_status;not null;default:'scheduled';index" json:"status"`
	CreatedAt         time.Time   `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient Patient  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Office  Office   `gorm:"foreignKey:OfficeID" json:"office,omitempty"`
	Disease *Disease `gorm:"foreignKey:DiseaseID" json:"disease,omitempty"`
}

func (Visit) TableName() string {
	return "visits"
}

// Overlaps reports whether the visit interval intersects [start, end).
// Half-open semantics: touching endpoints do not conflict.
func (v *Visit) Overlaps(start, end time.Time) bool {
	return v.Date.Before(end) && v.PredictedEndDate.After(start)
}

// IsLifecycleLocked reports whether the visit can no longer be edited
// because it has started or finished.
func (v *Visit) IsLifecycleLocked() bool {
	return v.Status == VisitStatusInProgress || v.Status == VisitStatusCompleted
}

// InEditLockWindow reports whether now is within the 24h pre-start lock window.
func (v *Visit) InEditLockWindow(now time.Time) bool {
	return v.Date.Sub(now) <= EditLockWindow
}
