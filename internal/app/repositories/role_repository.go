package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanmay/coachdesk/internal/app/models"
	"github.com/tanmay/coachdesk/internal/pkg/logger"
)

// ErrRoleNotFound is returned when no role record exists for a subject.
// Callers must not expose it; the authorizer collapses it into the same
// Forbidden as a wrong role.
var ErrRoleNotFound = errors.New("role record not found")

// RoleRepository handles role record database operations.
type RoleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoleRepository creates a new RoleRepository.
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetRole retrieves the role for a subject. No caching: every call hits
// the store so a revoked role takes effect on the next request.
func (r *RoleRepository) GetRole(ctx context.Context, subjectID string) (models.Role, error) {
	sql, args, err := r.sb.Select("role").
		From("users").
		Where(squirrel.Eq{"id": subjectID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get role SQL")
		return "", fmt.Errorf("failed to build get role query: %w", err)
	}

	var role string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrRoleNotFound
		}
		logger.Error().Err(err).Str("subjectID", subjectID).Msg("Error scanning role row")
		return "", fmt.Errorf("error retrieving role: %w", err)
	}

	return models.Role(role), nil
}

// UpsertRole writes the role record for a subject, keeping the existing
// role when the record already exists (registration is merge-on-repeat).
func (r *RoleRepository) UpsertRole(ctx context.Context, subjectID string, role models.Role) error {
	sql, args, err := r.sb.Insert("users").
		Columns("id", "role").
		Values(subjectID, string(role)).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert role SQL")
		return fmt.Errorf("failed to build upsert role query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("subjectID", subjectID).Msg("Error executing upsert role query")
		return fmt.Errorf("error upserting role: %w", err)
	}

	return nil
}
