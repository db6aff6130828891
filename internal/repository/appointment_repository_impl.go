package repository

import (
	"errors"
	"time"

	"clinic-manager/internal/domain/entity"
	domainRepo "clinic-manager/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Practitioner").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindAll returns appointments with patient and practitioner loaded, most
// recent slot first. The filter narrows by at most one dimension.
func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Preload("Patient").Preload("Practitioner")

	if filter != nil {
		if filter.PractitionerID != 0 {
			query = query.Where("practitioner_id = ?", filter.PractitionerID)
		}
		if filter.PatientID != 0 {
			query = query.Where("patient_id = ?", filter.PatientID)
		}
		if filter.Date != "" {
			query = query.Where("date = ?", filter.Date)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	err := query.Order("date DESC, time DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindActiveSlot returns the non-cancelled appointment occupying the slot,
// or nil when the slot is free. Cancelled rows never block a slot.
func (r *appointmentRepository) FindActiveSlot(db *gorm.DB, practitionerID int64, date time.Time, timeOfDay string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("practitioner_id = ? AND date = ? AND time = ? AND status != ?",
		practitionerID, date, timeOfDay, entity.StatusCancelled).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// UpdateStatus sets the status and, when notes is non-nil, overwrites the
// stored notes. Returns affected rows: 0 means no such appointment.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus, notes *string) (int64, error) {
	values := map[string]interface{}{"status": status}
	if notes != nil {
		values["notes"] = *notes
	}
	result := db.Model(&entity.Appointment{}).Where("id = ?", id).Updates(values)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
