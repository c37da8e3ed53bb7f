package entity

import "github.com/google/uuid"

// Specialization is a dictionary entry for doctor specializations, unique by name
type Specialization struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReadableID int64     `gorm:"uniqueIndex;not null" json:"readable_id"`
	Name       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (Specialization) TableName() string {
	return "specializations"
}
