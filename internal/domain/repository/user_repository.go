package repository

import (
	"clinic-manager/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id int64) (*entity.User, error)
	FindPractitionerByID(db *gorm.DB, id int64) (*entity.User, error)
	FindPractitioners(db *gorm.DB) ([]entity.User, error)
	CountAll(db *gorm.DB) (int64, error)
}
