package identity

import (
	"context"
)

// Verifier validates an opaque bearer credential against the identity
// provider and resolves it to a stable subject identifier.
//
// Implementations must distinguish a credential that failed verification
// (apperrors.ErrInvalidCredential) from a provider that could not be
// reached (apperrors.ErrOracleUnavailable); callers choose retry policy.
// Verification performs no retries and caches nothing across calls.
type Verifier interface {
	Verify(ctx context.Context, credential string) (string, error)
}
