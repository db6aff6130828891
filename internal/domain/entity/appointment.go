package entity

import "time"

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatus reports whether the value belongs to the allowed status set.
func ValidStatus(status AppointmentStatus) bool {
	switch status {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment represents a booked slot for one patient with one practitioner.
// A practitioner holds at most one non-cancelled appointment per (date, time);
// the partial unique index uq_appointments_slot enforces this in the database.
type Appointment struct {
	ID             int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID      int64             `gorm:"not null;index" json:"patient_id"`
	PractitionerID int64             `gorm:"not null;index" json:"practitioner_id"`
	Date           time.Time         `gorm:"column:date;type:date;not null" json:"date"`
	Time           string            `gorm:"column:time;type:time;not null" json:"time"`
	Reason         string            `gorm:"type:text" json:"reason,omitempty"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Notes          string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient      Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Practitioner User    `gorm:"foreignKey:PractitionerID" json:"practitioner,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment no longer occupies its slot.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsCompleted checks if the appointment has taken place.
func (a *Appointment) IsCompleted() bool {
	return a.Status == StatusCompleted
}
