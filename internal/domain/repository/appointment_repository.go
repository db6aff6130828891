package repository

import (
	"time"

	"clinic-manager/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int64) (*entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindActiveSlot(db *gorm.DB, practitionerID int64, date time.Time, timeOfDay string) (*entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus, notes *string) (int64, error)
	Delete(db *gorm.DB, id int64) (int64, error)
}
