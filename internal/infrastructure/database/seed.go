package database

import (
	"fmt"

	"clinic-manager/config"
	"clinic-manager/internal/domain/entity"
	"clinic-manager/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts one practitioner and one secretary account when the users
// table is empty, so a fresh install can be logged into. Existing accounts
// make it a no-op.
func Seed(db *gorm.DB, userRepo repository.UserRepository, cfg config.SeedConfig) error {
	count, err := userRepo.CountAll(db)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	practitionerPassword := cfg.PractitionerPassword
	if practitionerPassword == "" {
		practitionerPassword = "practitioner123"
	}
	secretaryPassword := cfg.SecretaryPassword
	if secretaryPassword == "" {
		secretaryPassword = "secretary123"
	}

	accounts := []struct {
		user     entity.User
		password string
	}{
		{
			user: entity.User{
				LastName:  "Diop",
				FirstName: "Amadou",
				Email:     "dr.diop@clinic.example",
				Role:      entity.RolePractitioner,
				Specialty: "Cardiology",
				Phone:     "771234567",
			},
			password: practitionerPassword,
		},
		{
			user: entity.User{
				LastName:  "Ndiaye",
				FirstName: "Fatou",
				Email:     "secretary@clinic.example",
				Role:      entity.RoleSecretary,
				Phone:     "776543210",
			},
			password: secretaryPassword,
		},
	}

	tx := db.Begin()
	defer tx.Rollback()

	for i := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(accounts[i].password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		accounts[i].user.PasswordHash = string(hash)

		if err := userRepo.Create(tx, &accounts[i].user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", accounts[i].user.Email, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	logrus.Info("Seeded default practitioner and secretary accounts")
	return nil
}
