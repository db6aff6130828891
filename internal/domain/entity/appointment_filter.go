package entity

// AppointmentFilter is a domain-level filter for listing appointments.
// Used by the repository layer to avoid coupling with delivery DTOs.
// Zero values mean "no restriction"; at most one field is set in practice.
type AppointmentFilter struct {
	PractitionerID int64
	PatientID      int64
	Date           string // Format: YYYY-MM-DD
	Status         AppointmentStatus
}
