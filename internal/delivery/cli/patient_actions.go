package cli

import (
	"context"
	"fmt"

	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
)

func (r *Runner) addPatient(ctx context.Context, session *dto.Session) {
	fmt.Fprintln(r.out, "\n=== ADD A PATIENT ===")

	req := &dto.RegisterPatientRequest{
		LastName:   r.prompter.Line("Last name"),
		FirstName:  r.prompter.Line("First name"),
		BirthDate:  r.prompter.Date("Birth date"),
		Sex:        r.prompter.Choice("Sex", []string{entity.SexMale, entity.SexFemale, entity.SexOther}),
		Phone:      r.prompter.Line("Phone"),
		Address:    r.prompter.Optional("Address"),
		Email:      r.prompter.Optional("Email"),
		NationalID: r.prompter.Optional("National ID"),
	}

	if err := r.validator.Validate(req); err != nil {
		fmt.Fprintf(r.out, "✗ %s\n", r.validator.Message(err))
		return
	}

	patient, err := r.patientUsecase.Register(ctx, &session.UserID, req)
	if err != nil {
		r.fail(err)
		return
	}

	fmt.Fprintf(r.out, "✓ Patient added (ID: %d)\n", patient.ID)
}

func (r *Runner) searchPatients(ctx context.Context) {
	fmt.Fprintln(r.out, "\n=== SEARCH PATIENTS ===")

	term := r.prompter.Line("Last name, first name or phone")
	patients, err := r.patientUsecase.Search(ctx, term)
	if err != nil {
		r.fail(err)
		return
	}

	if len(patients) == 0 {
		fmt.Fprintln(r.out, "No patient found")
		return
	}

	fmt.Fprintf(r.out, "%d patient(s) found:\n", len(patients))
	r.renderPatients(patients)
}

func (r *Runner) listPatients(ctx context.Context) {
	fmt.Fprintln(r.out, "\n=== ALL PATIENTS ===")

	patients, err := r.patientUsecase.List(ctx)
	if err != nil {
		r.fail(err)
		return
	}

	if len(patients) == 0 {
		fmt.Fprintln(r.out, "No patient registered")
		return
	}

	fmt.Fprintf(r.out, "Total: %d patients\n", len(patients))
	r.renderPatients(patients)
}

func (r *Runner) renderPatients(patients []dto.PatientSummary) {
	for _, p := range patients {
		fmt.Fprintf(r.out, "ID %d | %s %s | born %s | %s | tel %s\n",
			p.ID, p.LastName, p.FirstName, p.BirthDate, p.Sex, p.Phone)
	}
}

// consultPatient shows the full record plus the patient's appointments, the
// practitioner's view.
func (r *Runner) consultPatient(ctx context.Context) {
	fmt.Fprintln(r.out, "\n=== CONSULT A PATIENT ===")

	id := r.prompter.Int64("Patient ID")
	patient, err := r.patientUsecase.Get(ctx, id)
	if err != nil {
		r.fail(err)
		return
	}

	fmt.Fprintln(r.out, "\n--- Patient record ---")
	fmt.Fprintf(r.out, "Full name:    %s %s\n", patient.LastName, patient.FirstName)
	fmt.Fprintf(r.out, "Birth date:   %s\n", patient.BirthDate)
	fmt.Fprintf(r.out, "Sex:          %s\n", patient.Sex)
	fmt.Fprintf(r.out, "Phone:        %s\n", patient.Phone)
	fmt.Fprintf(r.out, "Address:      %s\n", orNA(patient.Address))
	fmt.Fprintf(r.out, "Email:        %s\n", orNA(patient.Email))
	fmt.Fprintf(r.out, "National ID:  %s\n", orNA(patient.NationalID))

	appointments, err := r.appointmentUsecase.List(ctx, &dto.ListAppointmentsRequest{PatientID: id})
	if err != nil {
		r.fail(err)
		return
	}
	if len(appointments) > 0 {
		fmt.Fprintf(r.out, "\n--- Appointments (%d) ---\n", len(appointments))
		for _, a := range appointments {
			fmt.Fprintf(r.out, "%s at %s | %s | with %s\n", a.Date, a.Time, a.Status, a.PractitionerName)
		}
	}
}

func (r *Runner) updatePatient(ctx context.Context, session *dto.Session) {
	fmt.Fprintln(r.out, "\n=== UPDATE A PATIENT ===")

	id := r.prompter.Int64("Patient ID")
	patient, err := r.patientUsecase.Get(ctx, id)
	if err != nil {
		r.fail(err)
		return
	}

	fmt.Fprintf(r.out, "\nPatient: %s %s\n", patient.LastName, patient.FirstName)
	req := &dto.UpdatePatientRequest{
		Phone:   r.prompter.OptionalPtr(fmt.Sprintf("New phone (%s)", patient.Phone)),
		Address: r.prompter.OptionalPtr(fmt.Sprintf("New address (%s)", orNA(patient.Address))),
		Email:   r.prompter.OptionalPtr(fmt.Sprintf("New email (%s)", orNA(patient.Email))),
	}

	if err := r.validator.Validate(req); err != nil {
		fmt.Fprintf(r.out, "✗ %s\n", r.validator.Message(err))
		return
	}

	if err := r.patientUsecase.Update(ctx, &session.UserID, id, req); err != nil {
		r.fail(err)
		return
	}

	fmt.Fprintln(r.out, "✓ Patient updated")
}

func (r *Runner) deletePatient(ctx context.Context, session *dto.Session) {
	fmt.Fprintln(r.out, "\n=== DELETE A PATIENT ===")

	id := r.prompter.Int64("Patient ID")
	if !r.prompter.Confirm("This also removes the patient's appointments. Confirm?") {
		fmt.Fprintln(r.out, "Deletion abandoned")
		return
	}

	if err := r.patientUsecase.Delete(ctx, &session.UserID, id); err != nil {
		r.fail(err)
		return
	}

	fmt.Fprintln(r.out, "✓ Patient deleted")
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
