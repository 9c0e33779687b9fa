package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tanmay/coachdesk/internal/pkg/apperrors"
)

// JWTConfig defines settings for token verification against the identity
// provider's shared signing key.
type JWTConfig struct {
	SigningKey string
	Issuer     string
}

// JWTVerifier validates identity-provider tokens locally. It never
// returns ErrOracleUnavailable: the signing key is process-wide
// configuration, so verification cannot fail transiently.
type JWTVerifier struct {
	config JWTConfig
}

// NewJWTVerifier creates a verifier for HS256 tokens.
func NewJWTVerifier(config JWTConfig) *JWTVerifier {
	return &JWTVerifier{config: config}
}

// Verify parses and validates the token, returning its subject.
func (v *JWTVerifier) Verify(_ context.Context, credential string) (string, error) {
	if strings.TrimSpace(credential) == "" {
		return "", apperrors.ErrInvalidCredential
	}

	token, err := jwt.ParseWithClaims(credential, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.config.SigningKey), nil
	}, jwt.WithIssuer(v.config.Issuer))

	if err != nil {
		// Expired, tampered and malformed tokens are all the same failure
		// to the caller.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperrors.NewCustomError(apperrors.ErrInvalidCredential, "token expired")
		}
		return "", apperrors.NewCustomError(apperrors.ErrInvalidCredential, "token validation failed")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", apperrors.ErrInvalidCredential
	}

	return claims.Subject, nil
}
