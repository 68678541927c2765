package router

import (
	"context"
	"sync"

	"github.com/theinterviewer/backend/internal/common"
	"github.com/theinterviewer/backend/internal/models"
)

// In-memory repositories backing the route-level tests. They mirror the
// persistence contracts closely enough to exercise every handler, including
// the duplicate-application rejection the database index would produce.

type memCEORepo struct {
	mu   sync.Mutex
	rows map[string]models.CEO
}

func newMemCEORepo() *memCEORepo {
	return &memCEORepo{rows: make(map[string]models.CEO)}
}

func (r *memCEORepo) GetByName(_ context.Context, name string) (*models.CEO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ceo, ok := r.rows[name]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "User not found", nil)
	}
	return &ceo, nil
}

func (r *memCEORepo) Create(_ context.Context, ceo *models.CEO) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ceo.ID = uint(len(r.rows) + 1)
	r.rows[ceo.Name] = *ceo
	return nil
}

type memHRRepo struct {
	mu   sync.Mutex
	rows map[string]models.HR
}

func newMemHRRepo() *memHRRepo {
	return &memHRRepo{rows: make(map[string]models.HR)}
}

func (r *memHRRepo) GetByEmail(_ context.Context, email string) (*models.HR, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	hr, ok := r.rows[email]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "User not found", nil)
	}
	return &hr, nil
}

func (r *memHRRepo) Create(_ context.Context, hr *models.HR) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[hr.Email]; ok {
		return common.NewError(common.CodeConflict, "Email already registered", nil)
	}
	hr.ID = uint(len(r.rows) + 1)
	r.rows[hr.Email] = *hr
	return nil
}

type memCandidateRepo struct {
	mu   sync.Mutex
	rows map[string]models.Candidate
}

func newMemCandidateRepo() *memCandidateRepo {
	return &memCandidateRepo{rows: make(map[string]models.Candidate)}
}

func (r *memCandidateRepo) GetByEmail(_ context.Context, email string) (*models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidate, ok := r.rows[email]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "User not found", nil)
	}
	return &candidate, nil
}

func (r *memCandidateRepo) Create(_ context.Context, candidate *models.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[candidate.Email]; ok {
		return common.NewError(common.CodeConflict, "Email already registered", nil)
	}
	candidate.ID = uint(len(r.rows) + 1)
	r.rows[candidate.Email] = *candidate
	return nil
}

func (r *memCandidateRepo) List(_ context.Context) ([]models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Candidate, 0, len(r.rows))
	for _, candidate := range r.rows {
		out = append(out, candidate)
	}
	return out, nil
}

type memJobRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   []models.JobPosting
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{nextID: 1}
}

func (r *memJobRepo) Create(_ context.Context, job *models.JobPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, *job)
	return nil
}

func (r *memJobRepo) GetByID(_ context.Context, id uint) (*models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, job := range r.rows {
		if job.ID == id {
			found := job
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "Job not found", nil)
}

func (r *memJobRepo) List(_ context.Context) ([]models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.JobPosting(nil), r.rows...), nil
}

func (r *memJobRepo) ListByHR(_ context.Context, hrID uint) ([]models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JobPosting
	for _, job := range r.rows {
		if job.HRID == hrID {
			out = append(out, job)
		}
	}
	return out, nil
}

type memApplicationRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   []models.CandidateApplication
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{nextID: 1}
}

func (r *memApplicationRepo) Create(_ context.Context, app *models.CandidateApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rows {
		if existing.JobPostingID == app.JobPostingID && existing.CandidateID == app.CandidateID {
			return common.NewError(common.CodeConflict, "Already applied to this job", nil)
		}
	}
	app.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, *app)
	return nil
}

func (r *memApplicationRepo) GetByID(_ context.Context, id uint) (*models.CandidateApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.rows {
		if app.ID == id {
			found := app
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "Application not found", nil)
}

func (r *memApplicationRepo) FindByJobAndCandidate(_ context.Context, jobID, candidateID uint) (*models.CandidateApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.rows {
		if app.JobPostingID == jobID && app.CandidateID == candidateID {
			found := app
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "Application not found", nil)
}

func (r *memApplicationRepo) ListByCandidate(_ context.Context, candidateID uint) ([]models.CandidateApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.CandidateApplication
	for _, app := range r.rows {
		if app.CandidateID == candidateID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r *memApplicationRepo) ListByJob(_ context.Context, jobID uint) ([]models.CandidateApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.CandidateApplication
	for _, app := range r.rows {
		if app.JobPostingID == jobID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r *memApplicationRepo) UpdateStatus(_ context.Context, id uint, status models.ApplicationStatus) (*models.CandidateApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].Status = status
			updated := r.rows[i]
			return &updated, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "Application not found", nil)
}
