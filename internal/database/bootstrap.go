package database

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/theinterviewer/backend/internal/config"
	"github.com/theinterviewer/backend/internal/models"
	"github.com/theinterviewer/backend/internal/security"
)

// SeedCEO makes sure exactly one CEO row exists, creating it from
// configuration on first startup. The seed is idempotent: a second boot
// finds the row and does nothing, so a later password change in the
// database is never overwritten.
func SeedCEO(db *gorm.DB, name, password string) error {
	if password == config.DefaultCEOPassword {
		log.Println("⚠️  CEO_PASSWORD is still the factory default; change it before exposing this service")
	}

	var ceo models.CEO
	err := db.Where("name = ?", name).First(&ceo).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := security.HashPassword(password)
	if err != nil {
		return err
	}
	if err := db.Create(&models.CEO{Name: name, Password: hashed}).Error; err != nil {
		return err
	}
	log.Printf("Seeded CEO account %q", name)
	return nil
}
