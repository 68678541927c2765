package services

import (
	"context"

	"github.com/theinterviewer/backend/internal/common"
	"github.com/theinterviewer/backend/internal/dtos"
	"github.com/theinterviewer/backend/internal/models"
	"github.com/theinterviewer/backend/internal/repository"
	"github.com/theinterviewer/backend/internal/security"
)

type AuthService struct {
	ceos       repository.CEORepository
	hrs        repository.HRRepository
	candidates repository.CandidateRepository
	tokens     *security.TokenProvider
	ceoName    string
}

func NewAuthService(ceos repository.CEORepository, hrs repository.HRRepository, candidates repository.CandidateRepository, tokens *security.TokenProvider, ceoName string) *AuthService {
	return &AuthService{ceos: ceos, hrs: hrs, candidates: candidates, tokens: tokens, ceoName: ceoName}
}

// Login exchanges credentials for a bearer token. The lookup order is fixed:
// the CEO's password is checked first (the CEO signs in with the fixed
// password, the submitted email is not consulted on that branch), then HR by
// email, then candidate by email. Every failure collapses into the same
// "Invalid credentials" error so callers cannot probe which emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.Role, error) {
	ceo, err := s.ceos.GetByName(ctx, s.ceoName)
	if err != nil && !common.Is(err, common.CodeNotFound) {
		return "", "", err
	}
	if ceo != nil && security.VerifyPassword(password, ceo.Password) {
		token, err := s.tokens.Issue(ceo.Name, models.RoleCEO)
		if err != nil {
			return "", "", err
		}
		return token, models.RoleCEO, nil
	}

	hr, err := s.hrs.GetByEmail(ctx, email)
	if err != nil && !common.Is(err, common.CodeNotFound) {
		return "", "", err
	}
	if hr != nil && security.VerifyPassword(password, hr.Password) {
		token, err := s.tokens.Issue(hr.Email, models.RoleHR)
		if err != nil {
			return "", "", err
		}
		return token, models.RoleHR, nil
	}

	candidate, err := s.candidates.GetByEmail(ctx, email)
	if err != nil && !common.Is(err, common.CodeNotFound) {
		return "", "", err
	}
	if candidate != nil && security.VerifyPassword(password, candidate.Password) {
		token, err := s.tokens.Issue(candidate.Email, models.RoleCandidate)
		if err != nil {
			return "", "", err
		}
		return token, models.RoleCandidate, nil
	}

	return "", "", common.NewError(common.CodeUnauthorized, "Invalid credentials", nil)
}

func (s *AuthService) SignupCandidate(ctx context.Context, req *dtos.CandidateSignupRequest) (*models.Candidate, error) {
	existing, err := s.candidates.GetByEmail(ctx, req.Email)
	if err != nil && !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, common.NewError(common.CodeConflict, "Email already registered", nil)
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	candidate := &models.Candidate{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashed,
		Phone:      req.Phone,
		Skills:     req.Skills,
		Experience: req.Experience,
	}
	if err := s.candidates.Create(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// SignupHR creates an HR account. The caller must already have been checked
// for the CEO role; this service only enforces email uniqueness.
func (s *AuthService) SignupHR(ctx context.Context, req *dtos.HRSignupRequest) (*models.HR, error) {
	existing, err := s.hrs.GetByEmail(ctx, req.Email)
	if err != nil && !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, common.NewError(common.CodeConflict, "Email already registered", nil)
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	hr := &models.HR{Name: req.Name, Email: req.Email, Password: hashed}
	if err := s.hrs.Create(ctx, hr); err != nil {
		return nil, err
	}
	return hr, nil
}
