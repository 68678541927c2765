package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/theinterviewer/backend/internal/common"
	"github.com/theinterviewer/backend/internal/models"
)

type GormCEORepository struct {
	db *gorm.DB
}

func NewCEORepository(db *gorm.DB) *GormCEORepository {
	return &GormCEORepository{db: db}
}

func (r *GormCEORepository) GetByName(ctx context.Context, name string) (*models.CEO, error) {
	var ceo models.CEO
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&ceo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "CEO not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load CEO", err)
	}
	return &ceo, nil
}

func (r *GormCEORepository) Create(ctx context.Context, ceo *models.CEO) error {
	if err := r.db.WithContext(ctx).Create(ceo).Error; err != nil {
		return common.NewError(common.CodeInternal, "failed to create CEO", err)
	}
	return nil
}

type GormHRRepository struct {
	db *gorm.DB
}

func NewHRRepository(db *gorm.DB) *GormHRRepository {
	return &GormHRRepository{db: db}
}

func (r *GormHRRepository) GetByEmail(ctx context.Context, email string) (*models.HR, error) {
	var hr models.HR
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&hr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "HR not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load HR", err)
	}
	return &hr, nil
}

func (r *GormHRRepository) Create(ctx context.Context, hr *models.HR) error {
	if err := r.db.WithContext(ctx).Create(hr).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.NewError(common.CodeConflict, "Email already registered", err)
		}
		return common.NewError(common.CodeInternal, "failed to create HR", err)
	}
	return nil
}

type GormCandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *GormCandidateRepository {
	return &GormCandidateRepository{db: db}
}

func (r *GormCandidateRepository) GetByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&candidate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Candidate not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load candidate", err)
	}
	return &candidate, nil
}

func (r *GormCandidateRepository) Create(ctx context.Context, candidate *models.Candidate) error {
	if err := r.db.WithContext(ctx).Create(candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.NewError(common.CodeConflict, "Email already registered", err)
		}
		return common.NewError(common.CodeInternal, "failed to create candidate", err)
	}
	return nil
}

func (r *GormCandidateRepository) List(ctx context.Context) ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := r.db.WithContext(ctx).Find(&candidates).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list candidates", err)
	}
	return candidates, nil
}
