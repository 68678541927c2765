package services

import (
	"context"
	"sync"

	"github.com/theinterviewer/backend/internal/common"
	"github.com/theinterviewer/backend/internal/models"
)

type fakeCEORepo struct {
	mu   sync.Mutex
	ceos map[string]*models.CEO
}

func newFakeCEORepo() *fakeCEORepo {
	return &fakeCEORepo{ceos: make(map[string]*models.CEO)}
}

func (r *fakeCEORepo) GetByName(ctx context.Context, name string) (*models.CEO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ceo := r.ceos[name]
	if ceo == nil {
		return nil, common.NewError(common.CodeNotFound, "CEO not found", nil)
	}
	clone := *ceo
	return &clone, nil
}

func (r *fakeCEORepo) Create(ctx context.Context, ceo *models.CEO) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ceo.ID = uint(len(r.ceos) + 1)
	clone := *ceo
	r.ceos[ceo.Name] = &clone
	return nil
}

type fakeHRRepo struct {
	mu     sync.Mutex
	nextID uint
	hrs    map[string]*models.HR
}

func newFakeHRRepo() *fakeHRRepo {
	return &fakeHRRepo{hrs: make(map[string]*models.HR)}
}

func (r *fakeHRRepo) GetByEmail(ctx context.Context, email string) (*models.HR, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	hr := r.hrs[email]
	if hr == nil {
		return nil, common.NewError(common.CodeNotFound, "HR not found", nil)
	}
	clone := *hr
	return &clone, nil
}

func (r *fakeHRRepo) Create(ctx context.Context, hr *models.HR) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.hrs[hr.Email]; exists {
		return common.NewError(common.CodeConflict, "Email already registered", nil)
	}
	r.nextID++
	hr.ID = r.nextID
	clone := *hr
	r.hrs[hr.Email] = &clone
	return nil
}

type fakeCandidateRepo struct {
	mu         sync.Mutex
	nextID     uint
	candidates map[string]*models.Candidate
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: make(map[string]*models.Candidate)}
}

func (r *fakeCandidateRepo) GetByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidate := r.candidates[email]
	if candidate == nil {
		return nil, common.NewError(common.CodeNotFound, "Candidate not found", nil)
	}
	clone := *candidate
	return &clone, nil
}

func (r *fakeCandidateRepo) Create(ctx context.Context, candidate *models.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.candidates[candidate.Email]; exists {
		return common.NewError(common.CodeConflict, "Email already registered", nil)
	}
	r.nextID++
	candidate.ID = r.nextID
	clone := *candidate
	r.candidates[candidate.Email] = &clone
	return nil
}

func (r *fakeCandidateRepo) List(ctx context.Context) ([]models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []models.Candidate
	for _, candidate := range r.candidates {
		items = append(items, *candidate)
	}
	return items, nil
}

type fakeJobRepo struct {
	mu     sync.Mutex
	nextID uint
	jobs   map[uint]*models.JobPosting
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uint]*models.JobPosting)}
}

func (r *fakeJobRepo) Create(ctx context.Context, job *models.JobPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	job.ID = r.nextID
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id uint) (*models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job := r.jobs[id]
	if job == nil {
		return nil, common.NewError(common.CodeNotFound, "Job not found", nil)
	}
	clone := *job
	return &clone, nil
}

func (r *fakeJobRepo) List(ctx context.Context) ([]models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []models.JobPosting
	for id := uint(1); id <= r.nextID; id++ {
		if job, ok := r.jobs[id]; ok {
			items = append(items, *job)
		}
	}
	return items, nil
}

func (r *fakeJobRepo) ListByHR(ctx context.Context, hrID uint) ([]models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []models.JobPosting
	for id := uint(1); id <= r.nextID; id++ {
		if job, ok := r.jobs[id]; ok && job.HRID == hrID {
			items = append(items, *job)
		}
	}
	return items, nil
}

type fakeApplicationRepo struct {
	mu     sync.Mutex
	nextID uint
	apps   map[uint]*models.CandidateApplication
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[uint]*models.CandidateApplication)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app *models.CandidateApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.apps {
		if existing.JobPostingID == app.JobPostingID && existing.CandidateID == app.CandidateID {
			return common.NewError(common.CodeConflict, "Already applied to this job", nil)
		}
	}
	r.nextID++
	app.ID = r.nextID
	clone := *app
	r.apps[app.ID] = &clone
	return nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id uint) (*models.CandidateApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app := r.apps[id]
	if app == nil {
		return nil, common.NewError(common.CodeNotFound, "Application not found", nil)
	}
	clone := *app
	return &clone, nil
}

func (r *fakeApplicationRepo) FindByJobAndCandidate(ctx context.Context, jobID, candidateID uint) (*models.CandidateApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.apps {
		if app.JobPostingID == jobID && app.CandidateID == candidateID {
			clone := *app
			return &clone, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "Application not found", nil)
}

func (r *fakeApplicationRepo) ListByCandidate(ctx context.Context, candidateID uint) ([]models.CandidateApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []models.CandidateApplication
	for id := uint(1); id <= r.nextID; id++ {
		if app, ok := r.apps[id]; ok && app.CandidateID == candidateID {
			items = append(items, *app)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID uint) ([]models.CandidateApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []models.CandidateApplication
	for id := uint(1); id <= r.nextID; id++ {
		if app, ok := r.apps[id]; ok && app.JobPostingID == jobID {
			items = append(items, *app)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) (*models.CandidateApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app := r.apps[id]
	if app == nil {
		return nil, common.NewError(common.CodeNotFound, "Application not found", nil)
	}
	app.Status = status
	clone := *app
	return &clone, nil
}
