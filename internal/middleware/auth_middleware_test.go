package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmay/coachdesk/internal/app/auth"
	"github.com/tanmay/coachdesk/internal/app/models"
	"github.com/tanmay/coachdesk/internal/app/repositories"
	"github.com/tanmay/coachdesk/internal/pkg/apperrors"
)

type fakeVerifier struct {
	subjects map[string]string
	err      error
}

func (f *fakeVerifier) Verify(_ context.Context, credential string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	subject, ok := f.subjects[credential]
	if !ok {
		return "", apperrors.ErrInvalidCredential
	}
	return subject, nil
}

type fakeRoleStore struct {
	roles map[string]models.Role
}

func (f *fakeRoleStore) GetRole(_ context.Context, subjectID string) (models.Role, error) {
	role, ok := f.roles[subjectID]
	if !ok {
		return "", repositories.ErrRoleNotFound
	}
	return role, nil
}

func newTestRouter(verifier *fakeVerifier, roles map[string]models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	authz := auth.NewAuthorizationService(&fakeRoleStore{roles: roles})
	mw := NewAuthMiddleware(verifier, authz)

	router := gin.New()
	protected := router.Group("/", mw.Authenticate())
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString(SubjectKey)})
	})
	protected.GET("/teacher", mw.RequireRole(models.RoleTeacher), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

// errorPayload extracts the error object, dropping the response timestamp.
func errorPayload(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body struct {
		Error map[string]interface{} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	verifier := &fakeVerifier{subjects: map[string]string{"good-token": "s1"}}
	router := newTestRouter(verifier, map[string]models.Role{"s1": models.RoleStudent})

	t.Run("valid credential passes and exposes the subject", func(t *testing.T) {
		rec := doRequest(router, "/me", "Bearer good-token")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"subject":"s1"`)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		rec := doRequest(router, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header is unauthorized", func(t *testing.T) {
		for _, header := range []string{"good-token", "Basic good-token", "Bearer", "Bearer "} {
			rec := doRequest(router, "/me", header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		}
	})

	t.Run("invalid credential is unauthorized", func(t *testing.T) {
		rec := doRequest(router, "/me", "Bearer forged-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("oracle outage is service unavailable, not unauthorized", func(t *testing.T) {
		downVerifier := &fakeVerifier{err: apperrors.ErrOracleUnavailable}
		downRouter := newTestRouter(downVerifier, nil)

		rec := doRequest(downRouter, "/me", "Bearer any-token")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	verifier := &fakeVerifier{subjects: map[string]string{
		"teacher-token": "t1",
		"student-token": "s1",
		"ghost-token":   "nobody",
	}}
	router := newTestRouter(verifier, map[string]models.Role{
		"t1": models.RoleTeacher,
		"s1": models.RoleStudent,
	})

	t.Run("teacher reaches teacher routes", func(t *testing.T) {
		rec := doRequest(router, "/teacher", "Bearer teacher-token")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("student is forbidden", func(t *testing.T) {
		rec := doRequest(router, "/teacher", "Bearer student-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("subject without a role record gets the same forbidden response", func(t *testing.T) {
		studentRec := doRequest(router, "/teacher", "Bearer student-token")
		ghostRec := doRequest(router, "/teacher", "Bearer ghost-token")

		assert.Equal(t, http.StatusForbidden, ghostRec.Code)
		assert.Equal(t, errorPayload(t, studentRec), errorPayload(t, ghostRec))
	})
}
