package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/tanmay/coachdesk/internal/app/models"
	"github.com/tanmay/coachdesk/internal/app/repositories"
	"github.com/tanmay/coachdesk/internal/pkg/apperrors"
	"github.com/tanmay/coachdesk/internal/pkg/logger"
)

// RoleStore resolves a subject's role record.
type RoleStore interface {
	GetRole(ctx context.Context, subjectID string) (models.Role, error)
}

// AuthorizationService decides whether a subject may invoke a privileged
// operation. Role records are read fresh on every call so revocation is
// immediate.
type AuthorizationService struct {
	roles RoleStore
}

// NewAuthorizationService creates a new AuthorizationService.
func NewAuthorizationService(roles RoleStore) *AuthorizationService {
	return &AuthorizationService{roles: roles}
}

// RequireRole returns nil when the subject holds requiredRole. A missing
// role record and a mismatched role yield the identical ErrForbidden so
// callers cannot enumerate which check failed.
func (s *AuthorizationService) RequireRole(ctx context.Context, subjectID string, requiredRole models.Role) error {
	role, err := s.roles.GetRole(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrRoleNotFound) {
			return apperrors.ErrForbidden
		}
		logger.Error().Err(err).Str("subjectID", subjectID).Msg("Error resolving role record")
		return fmt.Errorf("failed to resolve role: %w", err)
	}

	if role != requiredRole {
		return apperrors.ErrForbidden
	}

	return nil
}
