package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdatePatientRequest struct {
	FirstName   string          `json:"first_name" validate:"required,min=2,max=30"`
	LastName    string          `json:"last_name" validate:"required,min=2,max=30"`
	PhoneNumber string          `json:"phone_number" validate:"required,min=9,max=15"`
	Address     *AddressRequest `json:"address" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID          uuid.UUID        `json:"id"`
	ReadableID  int64            `json:"readable_id"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Email       string           `json:"email,omitempty"`
	Pesel       string           `json:"pesel"`
	Gender      string           `json:"gender"`
	BirthDate   *time.Time       `json:"birth_date,omitempty"`
	PhoneNumber string           `json:"phone_number"`
	Address     *AddressResponse `json:"address,omitempty"`
}

type AddressResponse struct {
	ID              int64  `json:"id"`
	Street          string `json:"street"`
	HouseNumber     string `json:"house_number"`
	ApartmentNumber string `json:"apartment_number,omitempty"`
	City            string `json:"city"`
	PostCode        string `json:"post_code"`
	Country         string `json:"country"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int64             `json:"total"`
}
