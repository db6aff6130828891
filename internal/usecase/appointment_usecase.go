package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clinic-manager/internal/converter"
	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
	"clinic-manager/internal/domain/repository"
	"clinic-manager/internal/service"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrPractitionerNotFound = errors.New("practitioner not found")
	ErrSlotUnavailable      = errors.New("this time slot is not available")
	ErrInvalidStatus        = errors.New("status must be scheduled, completed or cancelled")
	ErrInvalidTimeFormat    = errors.New("invalid time format, use HH:MM")
)

const timeLayout = "15:04"

type AppointmentUsecase interface {
	Create(ctx context.Context, actorID *int64, req *dto.CreateAppointmentRequest) (*dto.AppointmentView, error)
	List(ctx context.Context, req *dto.ListAppointmentsRequest) ([]dto.AppointmentView, error)
	SetStatus(ctx context.Context, actorID *int64, id int64, status entity.AppointmentStatus, notes *string) error
	Delete(ctx context.Context, actorID *int64, id int64) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	userRepo        repository.UserRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		userRepo:        userRepo,
		auditService:    auditService,
	}
}

// Create books a slot. The existence checks and the insert run in one
// transaction; the partial unique index on (practitioner_id, date, time)
// remains the source of truth, so a concurrent creator for the same slot
// loses at the database and surfaces as ErrSlotUnavailable here.
func (u *appointmentUsecase) Create(ctx context.Context, actorID *int64, req *dto.CreateAppointmentRequest) (*dto.AppointmentView, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	timeOfDay, err := parseClockTime(req.Time)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	practitioner, err := u.userRepo.FindPractitionerByID(tx, req.PractitionerID)
	if err != nil {
		u.log.Warnf("Failed to find practitioner %d: %+v", req.PractitionerID, err)
		return nil, err
	}
	if practitioner == nil {
		return nil, ErrPractitionerNotFound
	}

	existing, err := u.appointmentRepo.FindActiveSlot(tx, req.PractitionerID, date, timeOfDay)
	if err != nil {
		u.log.Warnf("Failed to check slot availability: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotUnavailable
	}

	appointment := &entity.Appointment{
		PatientID:      req.PatientID,
		PractitionerID: req.PractitionerID,
		Date:           date,
		Time:           timeOfDay,
		Reason:         req.Reason,
		Status:         entity.StatusScheduled,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "uq_appointments_slot") {
			// A concurrent create won the slot between our check and insert.
			return nil, ErrSlotUnavailable
		}
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		if isForeignKeyError(err, "practitioner") {
			return nil, ErrPractitionerNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, actorID, entity.AuditActionAppointmentCreate,
		"appointment", appointment.ID, map[string]interface{}{
			"patient_id":      req.PatientID,
			"practitioner_id": req.PractitionerID,
			"date":            req.Date,
			"time":            timeOfDay,
		}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Patient = *patient
	appointment.Practitioner = *practitioner
	return converter.AppointmentToView(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context, req *dto.ListAppointmentsRequest) ([]dto.AppointmentView, error) {
	filter := &entity.AppointmentFilter{}
	if req != nil {
		if req.Status != "" && !entity.ValidStatus(entity.AppointmentStatus(req.Status)) {
			return nil, ErrInvalidStatus
		}
		filter.PractitionerID = req.PractitionerID
		filter.PatientID = req.PatientID
		filter.Date = req.Date
		filter.Status = entity.AppointmentStatus(req.Status)
	}

	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToViews(appointments), nil
}

// SetStatus moves an appointment to any status in the allowed set. Notes are
// overwritten only when provided. Re-activating a cancelled appointment whose
// slot has since been taken fails on the same unique index as Create.
func (u *appointmentUsecase) SetStatus(ctx context.Context, actorID *int64, id int64, status entity.AppointmentStatus, notes *string) error {
	if !entity.ValidStatus(status) {
		return ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.UpdateStatus(tx, id, status, notes)
	if err != nil {
		if isDuplicateKeyError(err, "uq_appointments_slot") {
			return ErrSlotUnavailable
		}
		u.log.Warnf("Failed to update appointment %d status: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	if err := u.auditService.LogUpdate(tx, actorID, entity.AuditActionAppointmentStatus,
		"appointment", id, map[string]interface{}{"status": appointment.Status},
		map[string]interface{}{"status": status}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, actorID *int64, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	if err := u.auditService.LogDelete(tx, actorID, entity.AuditActionAppointmentDelete,
		"appointment", id, converter.AppointmentToView(appointment)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// parseClockTime validates and normalizes an HH:MM value.
func parseClockTime(value string) (string, error) {
	parsed, err := time.Parse(timeLayout, value)
	if err != nil {
		return "", err
	}
	return parsed.Format(timeLayout), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation on the named constraint.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// on the named constraint.
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
