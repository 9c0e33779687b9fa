package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmay/coachdesk/internal/pkg/apperrors"
)

func TestOracleClient_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted credential yields the subject", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/tokens/verify", r.URL.Path)

			var body struct {
				Token string `json:"token"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "good-token", body.Token)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"subjectId": "teacher_7"})
		}))
		defer srv.Close()

		subject, err := NewOracleClient(srv.URL, time.Second).Verify(ctx, "good-token")
		require.NoError(t, err)
		assert.Equal(t, "teacher_7", subject)
	})

	t.Run("rejected credential is invalid, not an outage", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := NewOracleClient(srv.URL, time.Second).Verify(ctx, "bad-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredential)
		assert.NotErrorIs(t, err, apperrors.ErrOracleUnavailable)
	})

	t.Run("provider error is an outage, not an invalid credential", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := NewOracleClient(srv.URL, time.Second).Verify(ctx, "any-token")
		assert.ErrorIs(t, err, apperrors.ErrOracleUnavailable)
		assert.NotErrorIs(t, err, apperrors.ErrInvalidCredential)
	})

	t.Run("unreachable provider is an outage", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		_, err := NewOracleClient(srv.URL, time.Second).Verify(ctx, "any-token")
		assert.ErrorIs(t, err, apperrors.ErrOracleUnavailable)
	})

	t.Run("malformed provider response is an outage", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		}))
		defer srv.Close()

		_, err := NewOracleClient(srv.URL, time.Second).Verify(ctx, "any-token")
		assert.ErrorIs(t, err, apperrors.ErrOracleUnavailable)
	})

	t.Run("accepted response without a subject is an outage", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer srv.Close()

		_, err := NewOracleClient(srv.URL, time.Second).Verify(ctx, "any-token")
		assert.ErrorIs(t, err, apperrors.ErrOracleUnavailable)
	})
}
