package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
	"clinic-manager/internal/usecase"
	"clinic-manager/pkg/validator"

	"github.com/sirupsen/logrus"
)

// Runner drives the text console. The logged-in session is an explicit value
// handed to every role-gated action; there is no ambient current-user state.
type Runner struct {
	prompter           *Prompter
	out                io.Writer
	log                *logrus.Logger
	validator          *validator.CustomValidator
	authUsecase        usecase.AuthUsecase
	userUsecase        usecase.UserUsecase
	patientUsecase     usecase.PatientUsecase
	appointmentUsecase usecase.AppointmentUsecase
}

func NewRunner(
	in io.Reader,
	out io.Writer,
	log *logrus.Logger,
	customValidator *validator.CustomValidator,
	authUsecase usecase.AuthUsecase,
	userUsecase usecase.UserUsecase,
	patientUsecase usecase.PatientUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
) *Runner {
	return &Runner{
		prompter:           NewPrompter(in, out),
		out:                out,
		log:                log,
		validator:          customValidator,
		authUsecase:        authUsecase,
		userUsecase:        userUsecase,
		patientUsecase:     patientUsecase,
		appointmentUsecase: appointmentUsecase,
	}
}

// Run loops login → role menu → logout until the operator quits.
func (r *Runner) Run(ctx context.Context) {
	fmt.Fprintln(r.out, "============================================================")
	fmt.Fprintln(r.out, "              CLINIC MANAGEMENT CONSOLE")
	fmt.Fprintln(r.out, "============================================================")

	for {
		if ctx.Err() != nil {
			return
		}
		session := r.login(ctx)
		if session == nil {
			fmt.Fprintln(r.out, "Goodbye!")
			return
		}
		r.mainMenu(ctx, session)
	}
}

// login asks for credentials until a session is opened or the operator gives
// up, in which case it returns nil. A cancelled context or exhausted input
// also gives up.
func (r *Runner) login(ctx context.Context) *dto.Session {
	for {
		if ctx.Err() != nil || r.prompter.Closed() {
			return nil
		}
		fmt.Fprintln(r.out, "\n=== LOGIN ===")
		req := &dto.LoginRequest{
			Email:    r.prompter.Line("Email"),
			Password: r.prompter.Line("Password"),
		}

		if err := r.validator.Validate(req); err != nil {
			fmt.Fprintf(r.out, "✗ %s\n", r.validator.Message(err))
		} else {
			session, err := r.authUsecase.Login(ctx, req)
			if err == nil {
				fmt.Fprintf(r.out, "\n✓ Welcome %s (%s)\n", session.FullName(), session.Role)
				return session
			}
			r.fail(err)
		}

		if !r.prompter.Confirm("Try again?") {
			return nil
		}
	}
}

func (r *Runner) mainMenu(ctx context.Context, session *dto.Session) {
	for {
		if ctx.Err() != nil || r.prompter.Closed() {
			return
		}
		r.header(session)

		var loggedOut bool
		if session.Role == string(entity.RolePractitioner) {
			loggedOut = r.practitionerMenu(ctx, session)
		} else {
			loggedOut = r.secretaryMenu(ctx, session)
		}
		if loggedOut {
			return
		}
	}
}

func (r *Runner) practitionerMenu(ctx context.Context, session *dto.Session) bool {
	fmt.Fprintln(r.out, "=== PRACTITIONER MENU ===")
	fmt.Fprintln(r.out, "1. My appointments")
	fmt.Fprintln(r.out, "2. Consult a patient")
	fmt.Fprintln(r.out, "3. Complete an appointment")
	fmt.Fprintln(r.out, "4. Search patients")
	fmt.Fprintln(r.out, "5. List all patients")
	fmt.Fprintln(r.out, "0. Log out")

	choice := r.prompter.Line("\nYour choice")
	if r.prompter.Closed() && choice == "" {
		return true
	}
	switch choice {
	case "1":
		r.myAppointments(ctx, session)
	case "2":
		r.consultPatient(ctx)
	case "3":
		r.completeAppointment(ctx, session)
	case "4":
		r.searchPatients(ctx)
	case "5":
		r.listPatients(ctx)
	case "0":
		return r.logout(session)
	default:
		fmt.Fprintln(r.out, "Invalid choice")
	}
	return false
}

func (r *Runner) secretaryMenu(ctx context.Context, session *dto.Session) bool {
	fmt.Fprintln(r.out, "=== SECRETARY MENU ===")
	fmt.Fprintln(r.out, "1. Add a patient")
	fmt.Fprintln(r.out, "2. Search patients")
	fmt.Fprintln(r.out, "3. Update a patient")
	fmt.Fprintln(r.out, "4. Delete a patient")
	fmt.Fprintln(r.out, "5. Create an appointment")
	fmt.Fprintln(r.out, "6. List appointments")
	fmt.Fprintln(r.out, "7. Cancel an appointment")
	fmt.Fprintln(r.out, "8. Delete an appointment")
	fmt.Fprintln(r.out, "9. List all patients")
	fmt.Fprintln(r.out, "10. Register a staff account")
	fmt.Fprintln(r.out, "0. Log out")

	choice := r.prompter.Line("\nYour choice")
	if r.prompter.Closed() && choice == "" {
		return true
	}
	switch choice {
	case "1":
		r.addPatient(ctx, session)
	case "2":
		r.searchPatients(ctx)
	case "3":
		r.updatePatient(ctx, session)
	case "4":
		r.deletePatient(ctx, session)
	case "5":
		r.createAppointment(ctx, session)
	case "6":
		r.listAppointments(ctx)
	case "7":
		r.cancelAppointment(ctx, session)
	case "8":
		r.deleteAppointment(ctx, session)
	case "9":
		r.listPatients(ctx)
	case "10":
		r.registerUser(ctx, session)
	case "0":
		return r.logout(session)
	default:
		fmt.Fprintln(r.out, "Invalid choice")
	}
	return false
}

func (r *Runner) header(session *dto.Session) {
	fmt.Fprintln(r.out, "\n============================================================")
	fmt.Fprintf(r.out, "Logged in: %s | Role: %s\n", session.FullName(), session.Role)
	fmt.Fprintln(r.out, "============================================================")
}

func (r *Runner) logout(session *dto.Session) bool {
	if r.prompter.Confirm("Really log out?") {
		fmt.Fprintf(r.out, "✓ Logged out %s\n", session.FullName())
		return true
	}
	return false
}

// knownErrs are the domain errors whose message can be shown verbatim.
var knownErrs = []error{
	usecase.ErrInvalidCredentials,
	usecase.ErrEmailAlreadyExists,
	usecase.ErrInvalidRole,
	usecase.ErrPatientNotFound,
	usecase.ErrInvalidDateFormat,
	usecase.ErrBirthDateInFuture,
	usecase.ErrInvalidPhone,
	usecase.ErrNothingToModify,
	usecase.ErrAppointmentNotFound,
	usecase.ErrPractitionerNotFound,
	usecase.ErrSlotUnavailable,
	usecase.ErrInvalidStatus,
	usecase.ErrInvalidTimeFormat,
}

// fail renders a domain error as its own message, anything else as a generic
// line; the detail has already been logged by the usecase.
func (r *Runner) fail(err error) {
	for _, known := range knownErrs {
		if errors.Is(err, known) {
			fmt.Fprintf(r.out, "✗ %s\n", known.Error())
			return
		}
	}
	r.log.Warnf("Unexpected error: %+v", err)
	fmt.Fprintln(r.out, "✗ The operation failed, please try again")
}
