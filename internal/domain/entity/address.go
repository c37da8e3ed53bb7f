package entity

// Address represents a postal address owned by a patient record
type Address struct {
	ID              int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Street          string `gorm:"type:varchar(50);not null" json:"street"`
	HouseNumber     string `gorm:"type:varchar(4);not null" json:"house_number"`
	ApartmentNumber string `gorm:"type:varchar(4)" json:"apartment_number,omitempty"`
	City            string `gorm:"type:varchar(50);not null" json:"city"`
	PostCode        string `gorm:"type:varchar(6);not null" json:"post_code"`
	Country         string `gorm:"type:char(2);not null" json:"country"`
}

func (Address) TableName() string {
	return "addresses"
}
