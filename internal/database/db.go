package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/theinterviewer/backend/internal/models"
)

type Options struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	ConnMaxLife  time.Duration
}

// Connect opens the postgres connection, waits for the database to come up,
// and runs migrations. TranslateError is on so unique-index violations show
// up as gorm.ErrDuplicatedKey instead of driver-specific errors.
func Connect(opts Options) *gorm.DB {
	db, err := gorm.Open(postgres.Open(opts.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to access connection pool:", err)
	}
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(opts.ConnMaxLife)

	deadline := time.Now().Add(30 * time.Second)
	backoff := 500 * time.Millisecond
	for {
		if err := sqlDB.Ping(); err == nil {
			break
		} else if time.Now().After(deadline) {
			log.Fatalf("failed to ping postgres: %v", err)
		} else {
			log.Printf("postgres not ready yet: %v", err)
			time.Sleep(backoff)
			if backoff < 5*time.Second {
				backoff *= 2
			}
		}
	}

	log.Println("Database connection established")

	log.Println("Running Migrations...")
	err = db.AutoMigrate(
		&models.CEO{},
		&models.HR{},
		&models.Candidate{},
		&models.JobPosting{},
		&models.CandidateApplication{},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
