package converter

import (
	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
)

// AppointmentToView converts an Appointment entity, with its preloaded
// patient and practitioner, to the joined listing row.
func AppointmentToView(appointment *entity.Appointment) *dto.AppointmentView {
	if appointment == nil {
		return nil
	}

	view := &dto.AppointmentView{
		ID:             appointment.ID,
		PatientID:      appointment.PatientID,
		PractitionerID: appointment.PractitionerID,
		Date:           appointment.Date.Format(dateLayout),
		Time:           clockTime(appointment.Time),
		Reason:         appointment.Reason,
		Status:         string(appointment.Status),
		Notes:          appointment.Notes,
		CreatedAt:      appointment.CreatedAt,
	}

	if appointment.Patient.ID != 0 {
		view.PatientName = appointment.Patient.FullName()
	}
	if appointment.Practitioner.ID != 0 {
		view.PractitionerName = appointment.Practitioner.FullName()
	}

	return view
}

// AppointmentsToViews converts a slice of Appointment entities.
func AppointmentsToViews(appointments []entity.Appointment) []dto.AppointmentView {
	views := make([]dto.AppointmentView, len(appointments))
	for i := range appointments {
		view := AppointmentToView(&appointments[i])
		if view != nil {
			views[i] = *view
		}
	}
	return views
}

// clockTime trims a stored HH:MM:SS value down to the HH:MM the console
// accepts and displays.
func clockTime(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
