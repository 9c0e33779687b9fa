package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/tanmay/coachdesk/internal/pkg/apperrors"
)

// OracleClient verifies credentials against a remote identity provider
// over HTTP. Network failures and provider-side errors surface as
// ErrOracleUnavailable so callers never mistake an outage for a bad
// credential.
type OracleClient struct {
	baseURL string
	http    *http.Client
}

// NewOracleClient creates a client with a bounded request timeout.
func NewOracleClient(baseURL string, timeout time.Duration) *OracleClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &OracleClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Verify posts the credential to the provider's verification endpoint.
func (c *OracleClient) Verify(ctx context.Context, credential string) (string, error) {
	body, _ := json.Marshal(map[string]string{"token": credential})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/tokens/verify", bytes.NewReader(body))
	if err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrOracleUnavailable, "building oracle request failed")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrOracleUnavailable, "oracle request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var out struct {
			SubjectID string `json:"subjectId"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.SubjectID == "" {
			return "", apperrors.NewCustomError(apperrors.ErrOracleUnavailable, "oracle returned malformed response")
		}
		return out.SubjectID, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return "", apperrors.ErrInvalidCredential
	default:
		return "", apperrors.NewCustomError(apperrors.ErrOracleUnavailable, "oracle returned "+resp.Status)
	}
}
