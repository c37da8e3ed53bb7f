package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Patient represents patient-specific role data wrapping one user identity.
// Gender and birth date are not stored; both are derived from the PESEL number.
type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReadableID  int64     `gorm:"uniqueIndex;not null" json:"readable_id"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Pesel       string    `gorm:"type:char(11);uniqueIndex;not null" json:"pesel"`
	PhoneNumber string    `gorm:"type:varchar(15);not null" json:"phone_number"`
	AddressID   int64     `gorm:"not null" json:"address_id"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Address Address `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	Visits  []Visit `gorm:"foreignKey:PatientID" json:"visits,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender derives gender from the 10th PESEL digit (even = female)
func (p *Patient) Gender() string {
	if len(p.Pesel) != 11 {
		return ""
	}
	if int(p.Pesel[9]-'0')%2 == 0 {
		return GenderFemale
	}
	return GenderMale
}

// BirthDate derives the birth date from the PESEL number.
// Months 21-32 encode years 2000-2099.
func (p *Patient) BirthDate() time.Time {
	if len(p.Pesel) != 11 {
		return time.Time{}
	}
	year := int(p.Pesel[0]-'0')*10 + int(p.Pesel[1]-'0')
	month := int(p.Pesel[2]-'0')*10 + int(p.Pesel[3]-'0')
	day := int(p.Pesel[4]-'0')*10 + int(p.Pesel[5]-'0')

	if month > 12 {
		year += 2000
		month -= 20
	} else {
		year += 1900
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
