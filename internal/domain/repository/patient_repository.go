package repository

import (
	"clinic-manager/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int64) (*entity.Patient, error)
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	Search(db *gorm.DB, term string) ([]entity.Patient, error)
	UpdateColumns(db *gorm.DB, id int64, values map[string]interface{}) (int64, error)
	Delete(db *gorm.DB, id int64) (int64, error)
}
