package services

import (
	"context"
	"strings"

	"github.com/theinterviewer/backend/internal/common"
	"github.com/theinterviewer/backend/internal/dtos"
	"github.com/theinterviewer/backend/internal/models"
	"github.com/theinterviewer/backend/internal/repository"
)

type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
}

func NewApplicationService(applications repository.ApplicationRepository, jobs repository.JobRepository) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs}
}

// Apply records a candidate's application. The existence check gives a
// friendly Conflict on the common path; the storage-level unique index on
// (job, candidate) is what actually closes the race between two concurrent
// applies.
func (s *ApplicationService) Apply(ctx context.Context, candidateID uint, req *dtos.ApplicationRequest) (*models.CandidateApplication, error) {
	if _, err := s.jobs.GetByID(ctx, req.JobPostingID); err != nil {
		return nil, err
	}

	if _, err := s.applications.FindByJobAndCandidate(ctx, req.JobPostingID, candidateID); err == nil {
		return nil, common.NewError(common.CodeConflict, "Already applied to this job", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}

	app := &models.CandidateApplication{
		JobPostingID:      req.JobPostingID,
		CandidateID:       candidateID,
		YearsOfExperience: req.YearsOfExperience,
		Skills:            req.Skills,
		University:        req.University,
		AdditionalInfo:    req.AdditionalInfo,
		Status:            models.StatusPending,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) ListOwn(ctx context.Context, candidateID uint) ([]models.CandidateApplication, error) {
	return s.applications.ListByCandidate(ctx, candidateID)
}

// ListForJob returns all applications to a job after verifying the calling
// HR owns it. A missing job is NotFound; someone else's job is Forbidden.
func (s *ApplicationService) ListForJob(ctx context.Context, hrID, jobID uint) ([]models.CandidateApplication, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.HRID != hrID {
		return nil, common.NewError(common.CodeForbidden, "Job belongs to another HR", nil)
	}
	return s.applications.ListByJob(ctx, jobID)
}

// UpdateStatus advances an application through the review flow on behalf of
// the HR that owns the job. pending can move to reviewed, accepted or
// rejected; reviewed to accepted or rejected; accepted and rejected are
// final.
func (s *ApplicationService) UpdateStatus(ctx context.Context, hrID, applicationID uint, status string) (*models.CandidateApplication, error) {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, app.JobPostingID)
	if err != nil {
		return nil, err
	}
	if job.HRID != hrID {
		return nil, common.NewError(common.CodeForbidden, "Application belongs to another HR's job", nil)
	}

	next := models.ApplicationStatus(strings.ToLower(strings.TrimSpace(status)))
	if !isKnownStatus(next) {
		return nil, common.NewError(common.CodeValidation, "status must be pending, reviewed, accepted, or rejected", nil)
	}
	if !isAllowedTransition(app.Status, next) {
		return nil, common.NewError(common.CodeValidation, "invalid status transition", nil)
	}
	return s.applications.UpdateStatus(ctx, applicationID, next)
}

func isKnownStatus(status models.ApplicationStatus) bool {
	switch status {
	case models.StatusPending, models.StatusReviewed, models.StatusAccepted, models.StatusRejected:
		return true
	default:
		return false
	}
}

func isAllowedTransition(from, to models.ApplicationStatus) bool {
	switch from {
	case models.StatusPending:
		return to == models.StatusReviewed || to == models.StatusAccepted || to == models.StatusRejected
	case models.StatusReviewed:
		return to == models.StatusAccepted || to == models.StatusRejected
	default:
		return false
	}
}
