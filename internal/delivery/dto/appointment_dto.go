package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID      int64  `json:"patient_id" validate:"required,min=1"`
	PractitionerID int64  `json:"practitioner_id" validate:"required,min=1"`
	Date           string `json:"date" validate:"required"`
	Time           string `json:"time" validate:"required"`
	Reason         string `json:"reason"`
}

// ListAppointmentsRequest narrows the listing by at most one dimension.
// The zero value lists everything.
type ListAppointmentsRequest struct {
	PractitionerID int64  `json:"practitioner_id"`
	PatientID      int64  `json:"patient_id"`
	Date           string `json:"date"`
	Status         string `json:"status"`
}

// Response DTOs

// AppointmentView joins the patient and practitioner display names onto the
// appointment row, the shape every listing in the console renders.
type AppointmentView struct {
	ID               int64     `json:"id"`
	PatientID        int64     `json:"patient_id"`
	PractitionerID   int64     `json:"practitioner_id"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Reason           string    `json:"reason,omitempty"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes,omitempty"`
	PatientName      string    `json:"patient_name"`
	PractitionerName string    `json:"practitioner_name"`
	CreatedAt        time.Time `json:"created_at"`
}
