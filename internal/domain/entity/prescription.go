package entity

import (
	"time"

	"github.com/google/uuid"
)

// PrescriptionValidity is how long a prescription stays valid after issue.
const PrescriptionValidity = 30 * 24 * time.Hour

// Prescription represents an issued prescription. It is linked to care context
// through exactly one of: a visit reference, or explicit patient+doctor
// references. When a visit is given, patient and doctor are derived from it.
type Prescription struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReadableID       int64      `gorm:"uniqueIndex;not null" json:"readable_id"`
	VisitID          *uuid.UUID `gorm:"type:uuid;index" json:"visit_id,omitempty"`
	PatientID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PrescriptionCode string     `gorm:"type:char(4);not null" json:"prescription_code"`
	Description      string     `gorm:"type:varchar(500)" json:"description,omitempty"`
	IssueDate        time.Time  `gorm:"type:date;not null" json:"issue_date"`
	ExpiryDate       time.Time  `gorm:"type:date;not null" json:"expiry_date"`

	// Relationships
	Visit   *Visit   `gorm:"foreignKey:VisitID" json:"visit,omitempty"`
	Patient Patient  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Dosages []Dosage `gorm:"foreignKey:PrescriptionID" json:"dosages,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
