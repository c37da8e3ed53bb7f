package entity

import "github.com/google/uuid"

// MedicineType is a dictionary entry (e.g. antibiotic), unique by name
type MedicineType struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (MedicineType) TableName() string {
	return "medicine_types"
}

// MedicineForm is a dictionary entry (e.g. tablet, syrup), unique by name
type MedicineForm struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (MedicineForm) TableName() string {
	return "medicine_forms"
}

// Ingredient is a dictionary entry for active ingredients, unique by name
type Ingredient struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// Medicine is a dictionary entry, unique by name
type Medicine struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReadableID int64     `gorm:"uniqueIndex;not null" json:"readable_id"`
	Name       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	TypeID     int64     `gorm:"not null;index" json:"type_id"`
	FormID     int64     `gorm:"not null;index" json:"form_id"`

	// Relationships
	Type              MedicineType `gorm:"foreignKey:TypeID" json:"type,omitempty"`
	Form              MedicineForm `gorm:"foreignKey:FormID" json:"form,omitempty"`
	ActiveIngredients []Ingredient `gorm:"many2many:medicine_ingredients" json:"active_ingredients,omitempty"`
}

func (Medicine) TableName() string {
	return "medicines"
}
