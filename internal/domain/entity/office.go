package entity

import "github.com/google/uuid"

// OfficeType is a dictionary entry (e.g. consultation, surgery), unique by name
type OfficeType struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (OfficeType) TableName() string {
	return "office_types"
}

// Office represents a physical clinic office
type Office struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReadableID   int64     `gorm:"uniqueIndex;not null" json:"readable_id"`
	OfficeTypeID int64     `gorm:"not null;index" json:"office_type_id"`
	Floor        int       `gorm:"not null" json:"floor"`

	// Relationships
	OfficeType OfficeType `gorm:"foreignKey:OfficeTypeID" json:"office_type,omitempty"`
	Visits     []Visit    `gorm:"foreignKey:OfficeID" json:"visits,omitempty"`
}

func (Office) TableName() string {
	return "offices"
}
