package services

import (
	"context"
	"fmt"

	"github.com/theinterviewer/backend/internal/common"
	"github.com/theinterviewer/backend/internal/models"
	"github.com/theinterviewer/backend/internal/repository"
)

// Principal is the resolved identity attached to every authenticated request.
type Principal struct {
	ID    uint
	Name  string
	Email string
	Role  models.Role
}

type resolveFunc func(ctx context.Context, subject string) (*Principal, error)

// PrincipalResolver maps a verified token's (subject, role) pair back to a
// concrete account row. The role dispatch is a closed lookup table rather
// than string comparisons scattered through handlers; the constructor panics
// if any known role lacks a resolver, so the table stays exhaustive.
type PrincipalResolver struct {
	resolvers map[models.Role]resolveFunc
}

func NewPrincipalResolver(ceos repository.CEORepository, hrs repository.HRRepository, candidates repository.CandidateRepository, ceoName string) *PrincipalResolver {
	resolvers := map[models.Role]resolveFunc{
		models.RoleCEO: func(ctx context.Context, subject string) (*Principal, error) {
			// The CEO is always looked up by the fixed configured name; the
			// token subject is not trusted to pick a different row.
			ceo, err := ceos.GetByName(ctx, ceoName)
			if err != nil {
				return nil, err
			}
			return &Principal{ID: ceo.ID, Name: ceo.Name, Role: models.RoleCEO}, nil
		},
		models.RoleHR: func(ctx context.Context, subject string) (*Principal, error) {
			hr, err := hrs.GetByEmail(ctx, subject)
			if err != nil {
				return nil, err
			}
			return &Principal{ID: hr.ID, Name: hr.Name, Email: hr.Email, Role: models.RoleHR}, nil
		},
		models.RoleCandidate: func(ctx context.Context, subject string) (*Principal, error) {
			candidate, err := candidates.GetByEmail(ctx, subject)
			if err != nil {
				return nil, err
			}
			return &Principal{ID: candidate.ID, Name: candidate.Name, Email: candidate.Email, Role: models.RoleCandidate}, nil
		},
	}
	for _, role := range models.Roles {
		if _, ok := resolvers[role]; !ok {
			panic(fmt.Sprintf("no principal resolver registered for role %q", role))
		}
	}
	return &PrincipalResolver{resolvers: resolvers}
}

// Resolve returns the principal for a verified claim pair, or unauthorized
// when the account no longer exists (it may have been removed after the
// token was issued).
func (r *PrincipalResolver) Resolve(ctx context.Context, role models.Role, subject string) (*Principal, error) {
	resolve, ok := r.resolvers[role]
	if !ok {
		return nil, common.NewError(common.CodeInvalidToken, "Invalid role", nil)
	}
	principal, err := resolve(ctx, subject)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "User not found", err)
		}
		return nil, err
	}
	return principal, nil
}
