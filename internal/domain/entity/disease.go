package entity

import "github.com/google/uuid"

// Disease is a dictionary entry, unique by name
type Disease struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReadableID  int64     `gorm:"uniqueIndex;not null" json:"readable_id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
}

func (Disease) TableName() string {
	return "diseases"
}
