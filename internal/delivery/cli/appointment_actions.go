package cli

import (
	"context"
	"fmt"

	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
)

func (r *Runner) createAppointment(ctx context.Context, session *dto.Session) {
	fmt.Fprintln(r.out, "\n=== CREATE AN APPOINTMENT ===")

	patientID := r.prompter.Int64("Patient ID")

	practitioners, err := r.userUsecase.ListPractitioners(ctx)
	if err != nil {
		r.fail(err)
		return
	}
	if len(practitioners) == 0 {
		fmt.Fprintln(r.out, "✗ No practitioner available")
		return
	}

	fmt.Fprintln(r.out, "\nAvailable practitioners:")
	for _, p := range practitioners {
		specialty := ""
		if p.Specialty != "" {
			specialty = " (" + p.Specialty + ")"
		}
		fmt.Fprintf(r.out, "  ID %d: Dr %s %s%s\n", p.ID, p.LastName, p.FirstName, specialty)
	}

	req := &dto.CreateAppointmentRequest{
		PatientID:      patientID,
		PractitionerID: r.prompter.Int64("\nPractitioner ID"),
		Date:           r.prompter.Date("Appointment date"),
		Time:           r.prompter.ClockTime("Appointment time"),
		Reason:         r.prompter.Optional("Reason"),
	}

	if err := r.validator.Validate(req); err != nil {
		fmt.Fprintf(r.out, "✗ %s\n", r.validator.Message(err))
		return
	}

	appointment, err := r.appointmentUsecase.Create(ctx, &session.UserID, req)
	if err != nil {
		r.fail(err)
		return
	}

	fmt.Fprintf(r.out, "✓ Appointment created (ID: %d)\n", appointment.ID)
}

func (r *Runner) listAppointments(ctx context.Context) {
	fmt.Fprintln(r.out, "\n=== ALL APPOINTMENTS ===")

	appointments, err := r.appointmentUsecase.List(ctx, nil)
	if err != nil {
		r.fail(err)
		return
	}

	if len(appointments) == 0 {
		fmt.Fprintln(r.out, "No appointment")
		return
	}

	fmt.Fprintf(r.out, "Total: %d appointments\n\n", len(appointments))
	for _, a := range appointments {
		fmt.Fprintf(r.out, "ID %d | %s at %s\n", a.ID, a.Date, a.Time)
		fmt.Fprintf(r.out, "  Patient: %s | Practitioner: %s\n", a.PatientName, a.PractitionerName)
		fmt.Fprintf(r.out, "  Status: %s | Reason: %s\n\n", a.Status, orNA(a.Reason))
	}
}

// myAppointments lists the logged-in practitioner's appointments.
func (r *Runner) myAppointments(ctx context.Context, session *dto.Session) {
	fmt.Fprintln(r.out, "\n=== MY APPOINTMENTS ===")

	appointments, err := r.appointmentUsecase.List(ctx, &dto.ListAppointmentsRequest{PractitionerID: session.UserID})
	if err != nil {
		r.fail(err)
		return
	}

	if len(appointments) == 0 {
		fmt.Fprintln(r.out, "No appointment")
		return
	}

	fmt.Fprintf(r.out, "Total: %d appointments\n\n", len(appointments))
	for _, a := range appointments {
		fmt.Fprintf(r.out, "ID %d | %s at %s | Patient: %s\n", a.ID, a.Date, a.Time, a.PatientName)
		fmt.Fprintf(r.out, "  Status: %s | Reason: %s\n\n", a.Status, orNA(a.Reason))
	}
}

func (r *Runner) completeAppointment(ctx context.Context, session *dto.Session) {
	fmt.Fprintln(r.out, "\n=== COMPLETE AN APPOINTMENT ===")

	id := r.prompter.Int64("Appointment ID")
	var notes *string
	if value := r.prompter.Optional("Notes"); value != "" {
		notes = &value
	}

	if err := r.appointmentUsecase.SetStatus(ctx, &session.UserID, id, entity.StatusCompleted, notes); err != nil {
		r.fail(err)
		return
	}

	fmt.Fprintln(r.out, "✓ Appointment completed")
}

func (r *Runner) cancelAppointment(ctx context.Context, session *dto.Session) {
	fmt.Fprintln(r.out, "\n=== CANCEL AN APPOINTMENT ===")

	id := r.prompter.Int64("Appointment ID")
	if !r.prompter.Confirm("Confirm cancellation?") {
		fmt.Fprintln(r.out, "Cancellation abandoned")
		return
	}

	if err := r.appointmentUsecase.SetStatus(ctx, &session.UserID, id, entity.StatusCancelled, nil); err != nil {
		r.fail(err)
		return
	}

	fmt.Fprintln(r.out, "✓ Appointment cancelled")
}

func (r *Runner) deleteAppointment(ctx context.Context, session *dto.Session) {
	fmt.Fprintln(r.out, "\n=== DELETE AN APPOINTMENT ===")

	id := r.prompter.Int64("Appointment ID")
	if !r.prompter.Confirm("Confirm deletion?") {
		fmt.Fprintln(r.out, "Deletion abandoned")
		return
	}

	if err := r.appointmentUsecase.Delete(ctx, &session.UserID, id); err != nil {
		r.fail(err)
		return
	}

	fmt.Fprintln(r.out, "✓ Appointment deleted")
}
