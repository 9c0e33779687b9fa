package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/tanmay/coachdesk/internal/app/models"
	"github.com/tanmay/coachdesk/internal/app/repositories"
)

// defaultTeacherSubject is the subject id of the bootstrap teacher
// account provisioned in the identity provider for new deployments.
const defaultTeacherSubject = "teacher_admin"

// CreateDefaultData provisions the bootstrap teacher role record so a
// fresh deployment has at least one subject able to mark attendance.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	roleRepo := repositories.NewRoleRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (bootstrap teacher role)...")
	if err := roleRepo.UpsertRole(ctx, defaultTeacherSubject, models.RoleTeacher); err != nil {
		lgr.Error().Err(err).Msg("Error creating bootstrap teacher role record")
		return err
	}

	return nil
}
