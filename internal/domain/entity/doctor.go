package entity

import "github.com/google/uuid"

// Doctor represents doctor-specific role data wrapping one user identity
type Doctor struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReadableID         int64     `gorm:"uniqueIndex;not null" json:"readable_id"`
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	JobExecutionNumber string    `gorm:"type:varchar(7);uniqueIndex;not null" json:"job_execution_number"`

	// Relationships
	User            User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Specializations []Specialization `gorm:"many2many:doctor_specializations" json:"specializations,omitempty"`
	Visits          []Visit          `gorm:"foreignKey:DoctorID" json:"visits,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
