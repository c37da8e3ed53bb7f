package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dosage is a prescription line item, owned exclusively by one prescription
type Dosage struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PrescriptionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"prescription_id"`
	MedicineID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"medicine_id"`
	Amount         decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"amount"`
	Frequency      string          `gorm:"type:varchar(100);not null" json:"frequency"`

	// Relationships
	Medicine Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}

func (Dosage) TableName() string {
	return "dosages"
}

// MaxDosageAmount is the upper bound for a single dosage amount
var MaxDosageAmount = decimal.NewFromInt(100)

// AmountInBounds reports whether 0 < amount <= 100
func (d *Dosage) AmountInBounds() bool {
	return d.Amount.IsPositive() && d.Amount.LessThanOrEqual(MaxDosageAmount)
}
