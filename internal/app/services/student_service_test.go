package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmay/coachdesk/internal/app/models"
	"github.com/tanmay/coachdesk/internal/pkg/apperrors"
)

type fakeStudentStore struct {
	records map[string]*models.StudentRecord
	merged  *models.StudentRecord
}

func (f *fakeStudentStore) GetByID(_ context.Context, id string) (*models.StudentRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return rec, nil
}

func (f *fakeStudentStore) List(_ context.Context) ([]models.StudentRecord, error) {
	out := make([]models.StudentRecord, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeStudentStore) CreateOrMerge(_ context.Context, rec *models.StudentRecord) error {
	f.merged = rec
	return nil
}

type fakeRoleWriter struct {
	gotSubject string
	gotRole    models.Role
}

func (f *fakeRoleWriter) UpsertRole(_ context.Context, subjectID string, role models.Role) error {
	f.gotSubject = subjectID
	f.gotRole = role
	return nil
}

func TestStudentService_FinalizeSignup(t *testing.T) {
	ctx := context.Background()

	newRecord := func() *models.StudentRecord {
		return &models.StudentRecord{
			ID:    "s1",
			Name:  "Asha",
			Email: "asha@example.com",
			Class: "10",
		}
	}

	t.Run("writes the record and role", func(t *testing.T) {
		store := &fakeStudentStore{records: map[string]*models.StudentRecord{}}
		roles := &fakeRoleWriter{}
		svc := NewStudentService(store, roles)

		require.NoError(t, svc.FinalizeSignup(ctx, newRecord(), models.RoleStudent))
		require.NotNil(t, store.merged)
		assert.Equal(t, "s1", store.merged.ID)
		assert.Equal(t, "s1", roles.gotSubject)
		assert.Equal(t, models.RoleStudent, roles.gotRole)
	})

	t.Run("role defaults to student", func(t *testing.T) {
		store := &fakeStudentStore{records: map[string]*models.StudentRecord{}}
		roles := &fakeRoleWriter{}
		svc := NewStudentService(store, roles)

		require.NoError(t, svc.FinalizeSignup(ctx, newRecord(), ""))
		assert.Equal(t, models.RoleStudent, roles.gotRole)
	})

	t.Run("fee amount defaults when unset", func(t *testing.T) {
		store := &fakeStudentStore{records: map[string]*models.StudentRecord{}}
		svc := NewStudentService(store, &fakeRoleWriter{})

		require.NoError(t, svc.FinalizeSignup(ctx, newRecord(), models.RoleStudent))
		assert.Equal(t, defaultFeeAmount, store.merged.Fees.Amount)
	})

	t.Run("incomplete profiles are rejected", func(t *testing.T) {
		store := &fakeStudentStore{records: map[string]*models.StudentRecord{}}
		svc := NewStudentService(store, &fakeRoleWriter{})

		for _, mutate := range []func(*models.StudentRecord){
			func(r *models.StudentRecord) { r.ID = "" },
			func(r *models.StudentRecord) { r.Email = " " },
			func(r *models.StudentRecord) { r.Name = "" },
			func(r *models.StudentRecord) { r.Class = "" },
		} {
			rec := newRecord()
			mutate(rec)
			err := svc.FinalizeSignup(ctx, rec, models.RoleStudent)
			assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		}
		assert.Nil(t, store.merged)
	})
}

func TestStudentService_CheckProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("complete profile", func(t *testing.T) {
		store := &fakeStudentStore{records: map[string]*models.StudentRecord{
			"s1": {ID: "s1", Class: "10"},
		}}
		svc := NewStudentService(store, &fakeRoleWriter{})

		complete, err := svc.CheckProfile(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, complete)
	})

	t.Run("record without a class is incomplete", func(t *testing.T) {
		store := &fakeStudentStore{records: map[string]*models.StudentRecord{
			"s1": {ID: "s1"},
		}}
		svc := NewStudentService(store, &fakeRoleWriter{})

		complete, err := svc.CheckProfile(ctx, "s1")
		require.NoError(t, err)
		assert.False(t, complete)
	})

	t.Run("missing record is incomplete, not an error", func(t *testing.T) {
		store := &fakeStudentStore{records: map[string]*models.StudentRecord{}}
		svc := NewStudentService(store, &fakeRoleWriter{})

		complete, err := svc.CheckProfile(ctx, "ghost")
		require.NoError(t, err)
		assert.False(t, complete)
	})
}
