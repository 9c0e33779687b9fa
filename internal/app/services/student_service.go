package services

import (
	"context"
	"errors"
	"strings"

	"github.com/tanmay/coachdesk/internal/app/models"
	"github.com/tanmay/coachdesk/internal/pkg/apperrors"
	"github.com/tanmay/coachdesk/internal/pkg/logger"
)

// defaultFeeAmount (paise) is assigned to new student records until an
// admin adjusts it.
const defaultFeeAmount int64 = 50000

// StudentStore is the record store surface used for reads and profile
// registration.
type StudentStore interface {
	GetByID(ctx context.Context, id string) (*models.StudentRecord, error)
	List(ctx context.Context) ([]models.StudentRecord, error)
	CreateOrMerge(ctx context.Context, rec *models.StudentRecord) error
}

// RoleWriter writes role records during registration.
type RoleWriter interface {
	UpsertRole(ctx context.Context, subjectID string, role models.Role) error
}

// StudentService handles student record reads and signup finalization.
type StudentService struct {
	students StudentStore
	roles    RoleWriter
}

// NewStudentService creates a new student service instance.
func NewStudentService(students StudentStore, roles RoleWriter) *StudentService {
	return &StudentService{students: students, roles: roles}
}

// GetStudent returns one student record with its attendance ledger.
func (s *StudentService) GetStudent(ctx context.Context, id string) (*models.StudentRecord, error) {
	return s.students.GetByID(ctx, id)
}

// ListStudents returns all student records ordered by name.
func (s *StudentService) ListStudents(ctx context.Context) ([]models.StudentRecord, error) {
	return s.students.List(ctx)
}

// FinalizeSignup completes first-time registration: create the student
// record if absent, merge the profile otherwise, and write the role
// record. Safe to repeat.
func (s *StudentService) FinalizeSignup(ctx context.Context, rec *models.StudentRecord, role models.Role) error {
	if strings.TrimSpace(rec.ID) == "" || strings.TrimSpace(rec.Email) == "" ||
		strings.TrimSpace(rec.Name) == "" || strings.TrimSpace(rec.Class) == "" {
		return apperrors.NewBadRequestError("uid, email, name and class are required")
	}
	if role == "" {
		role = models.RoleStudent
	}
	if rec.Fees.Amount == 0 {
		rec.Fees.Amount = defaultFeeAmount
	}

	if err := s.students.CreateOrMerge(ctx, rec); err != nil {
		return err
	}
	if err := s.roles.UpsertRole(ctx, rec.ID, role); err != nil {
		return err
	}

	logger.Info().Str("studentID", rec.ID).Str("role", string(role)).Msg("Signup finalized")
	return nil
}

// CheckProfile reports whether a complete profile (record present and
// class chosen) exists for the subject.
func (s *StudentService) CheckProfile(ctx context.Context, id string) (bool, error) {
	rec, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return false, nil
		}
		return false, err
	}
	return strings.TrimSpace(rec.Class) != "", nil
}
