package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/theinterviewer/backend/internal/common"
	"github.com/theinterviewer/backend/internal/models"
)

type GormJobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

func (r *GormJobRepository) Create(ctx context.Context, job *models.JobPosting) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return nil
}

func (r *GormJobRepository) GetByID(ctx context.Context, id uint) (*models.JobPosting, error) {
	var job models.JobPosting
	err := r.db.WithContext(ctx).First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return &job, nil
}

func (r *GormJobRepository) List(ctx context.Context) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	if err := r.db.WithContext(ctx).Find(&jobs).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	return jobs, nil
}

func (r *GormJobRepository) ListByHR(ctx context.Context, hrID uint) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	if err := r.db.WithContext(ctx).Where("hr_id = ?", hrID).Find(&jobs).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list HR jobs", err)
	}
	return jobs, nil
}
