package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmay/coachdesk/internal/pkg/apperrors"
)

type fakeAttendanceStore struct {
	known map[string]bool
	err   error

	gotIDs     []string
	gotTeacher string
	gotAt      time.Time
	calls      int
}

func (f *fakeAttendanceStore) AppendAttendanceBatch(_ context.Context, studentIDs []string, teacherName string, at time.Time) (int, error) {
	f.calls++
	f.gotIDs = studentIDs
	f.gotTeacher = teacherName
	f.gotAt = at
	if f.err != nil {
		return 0, f.err
	}
	applied := 0
	for _, id := range studentIDs {
		if f.known[id] {
			applied++
		}
	}
	return applied, nil
}

func TestAttendanceService_MarkPresent(t *testing.T) {
	ctx := context.Background()

	t.Run("appends one entry per known student", func(t *testing.T) {
		store := &fakeAttendanceStore{known: map[string]bool{"s1": true, "s2": true}}
		svc := NewAttendanceService(store)

		marked, err := svc.MarkPresent(ctx, []string{"s1", "s2"}, "Ms. Gupta")
		require.NoError(t, err)
		assert.Equal(t, 2, marked)
		assert.Equal(t, "Ms. Gupta", store.gotTeacher)
	})

	t.Run("empty batch never reaches the store", func(t *testing.T) {
		store := &fakeAttendanceStore{}
		svc := NewAttendanceService(store)

		_, err := svc.MarkPresent(ctx, nil, "Ms. Gupta")
		assert.ErrorIs(t, err, apperrors.ErrEmptyBatch)

		_, err = svc.MarkPresent(ctx, []string{}, "Ms. Gupta")
		assert.ErrorIs(t, err, apperrors.ErrEmptyBatch)
		assert.Zero(t, store.calls)
	})

	t.Run("missing teacher name falls back to the default", func(t *testing.T) {
		store := &fakeAttendanceStore{known: map[string]bool{"s1": true}}
		svc := NewAttendanceService(store)

		_, err := svc.MarkPresent(ctx, []string{"s1"}, "")
		require.NoError(t, err)
		assert.Equal(t, "Teacher", store.gotTeacher)
	})

	t.Run("unknown ids are skipped without aborting the batch", func(t *testing.T) {
		store := &fakeAttendanceStore{known: map[string]bool{"s1": true, "s3": true}}
		svc := NewAttendanceService(store)

		marked, err := svc.MarkPresent(ctx, []string{"s1", "ghost", "s3"}, "Ms. Gupta")
		require.NoError(t, err)
		assert.Equal(t, 2, marked)
	})

	t.Run("duplicate ids produce duplicate entries", func(t *testing.T) {
		store := &fakeAttendanceStore{known: map[string]bool{"s1": true}}
		svc := NewAttendanceService(store)

		marked, err := svc.MarkPresent(ctx, []string{"s1", "s1"}, "Ms. Gupta")
		require.NoError(t, err)
		assert.Equal(t, 2, marked)
	})

	t.Run("store rejection surfaces with nothing counted", func(t *testing.T) {
		store := &fakeAttendanceStore{err: apperrors.NewCustomError(apperrors.ErrBatchRejected, "tx aborted")}
		svc := NewAttendanceService(store)

		marked, err := svc.MarkPresent(ctx, []string{"s1"}, "Ms. Gupta")
		assert.ErrorIs(t, err, apperrors.ErrBatchRejected)
		assert.Zero(t, marked)
	})

	t.Run("timestamps are recorded in UTC", func(t *testing.T) {
		store := &fakeAttendanceStore{known: map[string]bool{"s1": true}}
		svc := NewAttendanceService(store)
		svc.now = func() time.Time {
			return time.Date(2026, 3, 14, 9, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
		}

		_, err := svc.MarkPresent(ctx, []string{"s1"}, "Ms. Gupta")
		require.NoError(t, err)
		assert.Equal(t, time.UTC, store.gotAt.Location())
		assert.Equal(t, 4, store.gotAt.Hour())
	})
}
