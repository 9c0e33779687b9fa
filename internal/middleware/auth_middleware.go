package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tanmay/coachdesk/internal/app/auth"
	"github.com/tanmay/coachdesk/internal/app/models"
	"github.com/tanmay/coachdesk/internal/app/models/dto"
	"github.com/tanmay/coachdesk/internal/pkg/apperrors"
	"github.com/tanmay/coachdesk/internal/pkg/identity"
)

// SubjectKey is the gin context key holding the verified subject id.
const SubjectKey = "subjectID"

// AuthMiddleware gates privileged routes: it verifies the bearer
// credential against the identity oracle and re-checks the subject's
// role record on every request.
type AuthMiddleware struct {
	verifier identity.Verifier
	authz    *auth.AuthorizationService
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(verifier identity.Verifier, authz *auth.AuthorizationService) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, authz: authz}
}

// extractBearerToken pulls the credential out of a fixed-format
// "Authorization: Bearer <token>" header.
func extractBearerToken(authHeader string) (string, error) {
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", apperrors.ErrMissingCredential
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", apperrors.ErrMissingCredential
	}
	return token, nil
}

// Authenticate validates the bearer credential and stores the subject id
// in the request context. Oracle outages are reported distinctly from
// invalid credentials and never retried here.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		subjectID, err := m.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, apperrors.ErrOracleUnavailable) {
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeOracleUnavailable, "Identity verification unavailable")
				errorDetail = errorDetail.WithSeverity(dto.ErrorSeverityCritical)
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
				return
			}
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Authentication failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(SubjectKey, subjectID)
		c.Next()
	}
}

// RequireRole ensures the authenticated subject holds the required role.
// "No role record" and "wrong role" produce the same response body.
func (m *AuthMiddleware) RequireRole(requiredRole models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		subjectID := c.GetString(SubjectKey)
		if subjectID == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if err := m.authz.RequireRole(c.Request.Context(), subjectID, requiredRole); err != nil {
			if errors.Is(err, apperrors.ErrForbidden) {
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "You do not have permission to perform this action")
				c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
				return
			}
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}
