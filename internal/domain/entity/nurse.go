package entity

import "github.com/google/uuid"

// Nurse represents nurse-specific role data wrapping one user identity
type Nurse struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReadableID           int64     `gorm:"uniqueIndex;not null" json:"readable_id"`
	UserID               uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	NursingLicenseNumber string    `gorm:"type:varchar(7);uniqueIndex;not null" json:"nursing_license_number"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Nurse) TableName() string {
	return "nurses"
}
