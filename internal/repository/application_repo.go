package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/theinterviewer/backend/internal/common"
	"github.com/theinterviewer/backend/internal/models"
)

type GormApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	return &GormApplicationRepository{db: db}
}

func (r *GormApplicationRepository) Create(ctx context.Context, app *models.CandidateApplication) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		// The unique index on (job_posting_id, candidate_id) is what makes
		// the duplicate check race-free; a concurrent second apply lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.NewError(common.CodeConflict, "Already applied to this job", err)
		}
		return common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return nil
}

func (r *GormApplicationRepository) GetByID(ctx context.Context, id uint) (*models.CandidateApplication, error) {
	var app models.CandidateApplication
	err := r.db.WithContext(ctx).First(&app, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}

func (r *GormApplicationRepository) FindByJobAndCandidate(ctx context.Context, jobID, candidateID uint) (*models.CandidateApplication, error) {
	var app models.CandidateApplication
	err := r.db.WithContext(ctx).
		Where("job_posting_id = ? AND candidate_id = ?", jobID, candidateID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}

func (r *GormApplicationRepository) ListByCandidate(ctx context.Context, candidateID uint) ([]models.CandidateApplication, error) {
	var apps []models.CandidateApplication
	if err := r.db.WithContext(ctx).Where("candidate_id = ?", candidateID).Find(&apps).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	return apps, nil
}

func (r *GormApplicationRepository) ListByJob(ctx context.Context, jobID uint) ([]models.CandidateApplication, error) {
	var apps []models.CandidateApplication
	if err := r.db.WithContext(ctx).Where("job_posting_id = ?", jobID).Find(&apps).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list job applications", err)
	}
	return apps, nil
}

func (r *GormApplicationRepository) UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) (*models.CandidateApplication, error) {
	result := r.db.WithContext(ctx).
		Model(&models.CandidateApplication{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, common.NewError(common.CodeNotFound, "Application not found", nil)
	}
	return r.GetByID(ctx, id)
}
