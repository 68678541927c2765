package services

import (
	"context"

	"github.com/theinterviewer/backend/internal/common"
	"github.com/theinterviewer/backend/internal/dtos"
	"github.com/theinterviewer/backend/internal/models"
	"github.com/theinterviewer/backend/internal/repository"
)

type JobService struct {
	jobs repository.JobRepository
}

func NewJobService(jobs repository.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

// CreateJob stores a posting owned by the calling HR. Postings are immutable
// after creation; there is deliberately no update or delete path.
func (s *JobService) CreateJob(ctx context.Context, hrID uint, req *dtos.JobCreationRequest) (*models.JobPosting, error) {
	job := &models.JobPosting{
		HRID:                   hrID,
		Title:                  req.Title,
		Description:            req.Description,
		ExperienceRequired:     req.ExperienceRequired,
		SkillsRequired:         req.SkillsRequired,
		AdditionalRequirements: req.AdditionalRequirements,
		QuestionsToAsk:         req.QuestionsToAsk,
		MoreInfo:               req.MoreInfo,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// ListJobs returns the public summary view of every posting.
func (s *JobService) ListJobs(ctx context.Context) ([]dtos.JobSummary, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]dtos.JobSummary, 0, len(jobs))
	for _, job := range jobs {
		summaries = append(summaries, dtos.JobSummary{
			ID:                 job.ID,
			Title:              job.Title,
			Description:        job.Description,
			ExperienceRequired: job.ExperienceRequired,
		})
	}
	return summaries, nil
}

func (s *JobService) GetJob(ctx context.Context, id uint) (*models.JobPosting, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *JobService) ListOwnJobs(ctx context.Context, hrID uint) ([]models.JobPosting, error) {
	return s.jobs.ListByHR(ctx, hrID)
}

// GetOwnJob loads a posting and verifies the caller owns it.
func (s *JobService) GetOwnJob(ctx context.Context, hrID, jobID uint) (*models.JobPosting, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.HRID != hrID {
		return nil, common.NewError(common.CodeForbidden, "Job belongs to another HR", nil)
	}
	return job, nil
}
