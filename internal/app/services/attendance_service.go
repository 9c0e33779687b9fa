package services

import (
	"context"
	"time"

	"github.com/tanmay/coachdesk/internal/pkg/apperrors"
	"github.com/tanmay/coachdesk/internal/pkg/logger"
	"github.com/tanmay/coachdesk/internal/pkg/metrics"
)

// defaultTeacherName is recorded when the caller omits a display name.
const defaultTeacherName = "Teacher"

// AttendanceStore applies attendance appends as a single all-or-nothing
// batch, skipping ids that resolve to no record, and reports how many
// entries were appended.
type AttendanceStore interface {
	AppendAttendanceBatch(ctx context.Context, studentIDs []string, teacherName string, at time.Time) (int, error)
}

// AttendanceService records session attendance for a cohort of students.
type AttendanceService struct {
	store AttendanceStore
	now   func() time.Time
}

// NewAttendanceService creates a new attendance service instance.
func NewAttendanceService(store AttendanceStore) *AttendanceService {
	return &AttendanceService{store: store, now: time.Now}
}

// MarkPresent appends one attendance entry per resolvable student and
// returns the number of appended entries. Unknown ids are skipped rather
// than aborting the batch; a store-level rejection applies nothing.
// Marking the same student twice produces two entries: the ledger is an
// append-only log, and any daily dedup is the caller's policy.
func (s *AttendanceService) MarkPresent(ctx context.Context, studentIDs []string, teacherName string) (int, error) {
	if len(studentIDs) == 0 {
		return 0, apperrors.ErrEmptyBatch
	}
	if teacherName == "" {
		teacherName = defaultTeacherName
	}

	applied, err := s.store.AppendAttendanceBatch(ctx, studentIDs, teacherName, s.now().UTC())
	if err != nil {
		return 0, err
	}

	metrics.AttendanceAppends.Add(float64(applied))
	if skipped := len(studentIDs) - applied; skipped > 0 {
		metrics.AttendanceSkipped.Add(float64(skipped))
		logger.Warn().Int("skipped", skipped).Int("applied", applied).Msg("Attendance batch contained unresolvable student ids")
	}

	return applied, nil
}
