package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-manager/internal/converter"
	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
	"clinic-manager/internal/domain/repository"
	"clinic-manager/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrBirthDateInFuture = errors.New("birth date cannot be in the future")
	ErrInvalidPhone      = errors.New("phone number must have at least 9 digits")
	ErrNothingToModify   = errors.New("nothing to modify")
)

const dateLayout = "2006-01-02"

type PatientUsecase interface {
	Register(ctx context.Context, actorID *int64, req *dto.RegisterPatientRequest) (*dto.PatientDetail, error)
	Search(ctx context.Context, term string) ([]dto.PatientSummary, error)
	List(ctx context.Context) ([]dto.PatientSummary, error)
	Get(ctx context.Context, id int64) (*dto.PatientDetail, error)
	Update(ctx context.Context, actorID *int64, id int64, req *dto.UpdatePatientRequest) error
	Delete(ctx context.Context, actorID *int64, id int64) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) Register(ctx context.Context, actorID *int64, req *dto.RegisterPatientRequest) (*dto.PatientDetail, error) {
	if len(req.Phone) < 9 {
		return nil, ErrInvalidPhone
	}

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if birthDate.After(time.Now()) {
		return nil, ErrBirthDateInFuture
	}

	patient := &entity.Patient{
		LastName:   req.LastName,
		FirstName:  req.FirstName,
		BirthDate:  birthDate,
		Sex:        req.Sex,
		Address:    req.Address,
		Phone:      req.Phone,
		Email:      req.Email,
		NationalID: req.NationalID,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, actorID, entity.AuditActionPatientCreate,
		"patient", patient.ID, map[string]interface{}{"last_name": patient.LastName, "first_name": patient.FirstName}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToDetail(patient), nil
}

func (u *patientUsecase) Search(ctx context.Context, term string) ([]dto.PatientSummary, error) {
	patients, err := u.patientRepo.Search(u.db.WithContext(ctx), term)
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToSummaries(patients), nil
}

func (u *patientUsecase) List(ctx context.Context) ([]dto.PatientSummary, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToSummaries(patients), nil
}

func (u *patientUsecase) Get(ctx context.Context, id int64) (*dto.PatientDetail, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToDetail(patient), nil
}

// Update applies a partial update against a fixed allow-list of columns.
// Fields outside the allow-list do not exist on the request type, so no
// caller-supplied name ever reaches the query.
func (u *patientUsecase) Update(ctx context.Context, actorID *int64, id int64, req *dto.UpdatePatientRequest) error {
	values := map[string]interface{}{}
	if req.LastName != nil {
		values["last_name"] = *req.LastName
	}
	if req.FirstName != nil {
		values["first_name"] = *req.FirstName
	}
	if req.Phone != nil {
		if len(*req.Phone) < 9 {
			return ErrInvalidPhone
		}
		values["phone"] = *req.Phone
	}
	if req.Address != nil {
		values["address"] = *req.Address
	}
	if req.Email != nil {
		values["email"] = *req.Email
	}
	if req.Sex != nil {
		values["sex"] = *req.Sex
	}

	if len(values) == 0 {
		return ErrNothingToModify
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	oldPatient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return err
	}
	if oldPatient == nil {
		return ErrPatientNotFound
	}

	affected, err := u.patientRepo.UpdateColumns(tx, id, values)
	if err != nil {
		u.log.Warnf("Failed to update patient %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	if err := u.auditService.LogUpdate(tx, actorID, entity.AuditActionPatientUpdate,
		"patient", id, converter.PatientToDetail(oldPatient), values); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// Delete removes the patient; the appointments cascade at the database.
func (u *patientUsecase) Delete(ctx context.Context, actorID *int64, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	oldPatient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return err
	}
	if oldPatient == nil {
		return ErrPatientNotFound
	}

	affected, err := u.patientRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	if err := u.auditService.LogDelete(tx, actorID, entity.AuditActionPatientDelete,
		"patient", id, converter.PatientToDetail(oldPatient)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
