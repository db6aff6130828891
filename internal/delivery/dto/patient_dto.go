package dto

import "time"

// Request DTOs

type RegisterPatientRequest struct {
	LastName   string `json:"last_name" validate:"required,max=100"`
	FirstName  string `json:"first_name" validate:"required,max=100"`
	BirthDate  string `json:"birth_date" validate:"required"`
	Sex        string `json:"sex" validate:"required,oneof=M F Other"`
	Phone      string `json:"phone" validate:"required,phone"`
	Address    string `json:"address"`
	Email      string `json:"email" validate:"omitempty,email"`
	NationalID string `json:"national_id" validate:"max=50"`
}

// UpdatePatientRequest is a partial update: nil fields are left untouched.
// Only this fixed set of fields can ever change; anything else about a
// patient is immutable from the console.
type UpdatePatientRequest struct {
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,phone"`
	Address   *string `json:"address"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Sex       *string `json:"sex" validate:"omitempty,oneof=M F Other"`
}

// Response DTOs

type PatientSummary struct {
	ID        int64  `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	BirthDate string `json:"birth_date"`
	Sex       string `json:"sex"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
}

type PatientDetail struct {
	ID           int64     `json:"id"`
	LastName     string    `json:"last_name"`
	FirstName    string    `json:"first_name"`
	BirthDate    string    `json:"birth_date"`
	Sex          string    `json:"sex"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	NationalID   string    `json:"national_id,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}
