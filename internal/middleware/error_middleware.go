package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanmay/coachdesk/internal/app/models/dto"
	"github.com/tanmay/coachdesk/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses. Transient
// upstream failures surface as generic server errors; authorization
// failures carry no detail beyond "forbidden".
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "You do not have permission to perform this action")))

	case errors.Is(err, apperrors.ErrInvalidSignature):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeSignatureInvalid, "Payment verification failed. Invalid signature.")))

	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student record not found")))

	case errors.Is(err, apperrors.ErrEmptyBatch), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))

	case errors.Is(err, apperrors.ErrBatchRejected):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeBatchRejected, "Attendance could not be recorded")))

	case errors.Is(err, apperrors.ErrOrderCreateFailed):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeOrderCreateFailed, "Internal Server Error")))

	case errors.Is(err, apperrors.ErrOracleUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeOracleUnavailable, "Identity verification unavailable")))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal Server Error")))
	}
}
