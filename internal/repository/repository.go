// Package repository defines the persistence contracts for the platform and
// their gorm-backed implementations. Services depend only on the interfaces,
// which is what keeps them testable against in-memory fakes.
package repository

import (
	"context"

	"github.com/theinterviewer/backend/internal/models"
)

type CEORepository interface {
	GetByName(ctx context.Context, name string) (*models.CEO, error)
	Create(ctx context.Context, ceo *models.CEO) error
}

type HRRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.HR, error)
	Create(ctx context.Context, hr *models.HR) error
}

type CandidateRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Candidate, error)
	Create(ctx context.Context, candidate *models.Candidate) error
	List(ctx context.Context) ([]models.Candidate, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *models.JobPosting) error
	GetByID(ctx context.Context, id uint) (*models.JobPosting, error)
	List(ctx context.Context) ([]models.JobPosting, error)
	ListByHR(ctx context.Context, hrID uint) ([]models.JobPosting, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.CandidateApplication) error
	GetByID(ctx context.Context, id uint) (*models.CandidateApplication, error)
	FindByJobAndCandidate(ctx context.Context, jobID, candidateID uint) (*models.CandidateApplication, error)
	ListByCandidate(ctx context.Context, candidateID uint) ([]models.CandidateApplication, error)
	ListByJob(ctx context.Context, jobID uint) ([]models.CandidateApplication, error)
	UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) (*models.CandidateApplication, error)
}
