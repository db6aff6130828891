package dto

import "time"

// Request DTOs

type RegisterUserRequest struct {
	LastName  string `json:"last_name" validate:"required,max=100"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required,oneof=practitioner secretary"`
	Specialty string `json:"specialty" validate:"max=100"`
	Phone     string `json:"phone" validate:"omitempty,phone"`
}

// Response DTOs

type UserResponse struct {
	ID        int64     `json:"id"`
	LastName  string    `json:"last_name"`
	FirstName string    `json:"first_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Specialty string    `json:"specialty,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type PractitionerSummary struct {
	ID        int64  `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Specialty string `json:"specialty,omitempty"`
	Phone     string `json:"phone,omitempty"`
}
