package services

import (
	"context"

	"github.com/theinterviewer/backend/internal/models"
	"github.com/theinterviewer/backend/internal/repository"
)

type UserService struct {
	candidates repository.CandidateRepository
}

func NewUserService(candidates repository.CandidateRepository) *UserService {
	return &UserService{candidates: candidates}
}

// ListCandidates returns the candidate directory. Access is restricted to HR
// and CEO at the route level; password hashes never serialize.
func (s *UserService) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	return s.candidates.List(ctx)
}
