package repository

import (
	"errors"

	"clinic-manager/internal/domain/entity"
	domainRepo "clinic-manager/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Order("last_name ASC, first_name ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// Search matches last name or first name case-insensitively, or phone by
// partial match.
func (r *patientRepository) Search(db *gorm.DB, term string) ([]entity.Patient, error) {
	var patients []entity.Patient
	pattern := "%" + term + "%"
	err := db.Where("last_name ILIKE ? OR first_name ILIKE ? OR phone LIKE ?", pattern, pattern, pattern).
		Order("last_name ASC, first_name ASC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// UpdateColumns applies the given column values to one patient row. Column
// names are fixed by the usecase allow-list, never taken from caller input.
// Returns affected rows: 0 means the patient does not exist.
func (r *patientRepository) UpdateColumns(db *gorm.DB, id int64, values map[string]interface{}) (int64, error) {
	result := db.Model(&entity.Patient{}).Where("id = ?", id).Updates(values)
	return result.RowsAffected, result.Error
}

func (r *patientRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
