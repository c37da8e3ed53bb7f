package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// RegisterPatientRequest registers a patient account with its address.
// Gender and birth date are derived from the PESEL number, not submitted.
type RegisterPatientRequest struct {
	Email       string         `json:"email" validate:"required,email"`
	Password    string         `json:"password" validate:"required,min=8"`
	FirstName   string         `json:"first_name" validate:"required,min=2,max=30"`
	LastName    string         `json:"last_name" validate:"required,min=2,max=30"`
	Pesel       string         `json:"pesel" validate:"required,pesel"`
	PhoneNumber string         `json:"phone_number" validate:"required,min=9,max=15"`
	Address     AddressRequest `json:"address" validate:"required"`
}

type AddressRequest struct {
	Street          string `json:"street" validate:"required,max=50"`
	HouseNumber     string `json:"house_number" validate:"required,max=4"`
	ApartmentNumber string `json:"apartment_number" validate:"omitempty,max=4"`
	City            string `json:"city" validate:"required,max=50"`
	PostCode        string `json:"post_code" validate:"required,postcode"`
	Country         string `json:"country" validate:"required,len=2"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID             uuid.UUID        `json:"id"`
	Email          string           `json:"email"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Role           string           `json:"role"`
	EmailConfirmed bool             `json:"email_confirmed"`
	IsActive       bool             `json:"is_active"`
	Doctor         *DoctorResponse  `json:"doctor,omitempty"`
	Nurse          *NurseResponse   `json:"nurse,omitempty"`
	Patient        *PatientResponse `json:"patient,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
