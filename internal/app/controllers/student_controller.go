package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanmay/coachdesk/internal/app/models"
	"github.com/tanmay/coachdesk/internal/app/models/dto"
	"github.com/tanmay/coachdesk/internal/app/services"
	"github.com/tanmay/coachdesk/internal/middleware"
	"github.com/tanmay/coachdesk/internal/pkg/apperrors"
)

// StudentController handles student record reads and registration.
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController.
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// ListStudents returns all student records.
// @Summary List all students
// @Description Returns every student record, ordered by name, with attendance ledger and fee status.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.StudentRecord "Student records"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid credential"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a teacher"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if students == nil {
		students = []models.StudentRecord{}
	}
	ctx.JSON(http.StatusOK, students)
}

// Me returns the caller's own student record.
// @Summary Get own student record
// @Description Returns the authenticated subject's record with attendance ledger and fee status.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.StudentRecord "Student record"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid credential"
// @Failure 404 {object} dto.ErrorResponse "No record for this subject"
// @Router /students/me [get]
func (c *StudentController) Me(ctx *gin.Context) {
	subjectID := ctx.GetString(middleware.SubjectKey)

	student, err := c.studentService.GetStudent(ctx.Request.Context(), subjectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student record not found")
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// FinalizeSignup completes a subject's registration.
// @Summary Finalize signup
// @Description Creates the student record if absent, merges the profile otherwise, and writes the role record. Idempotent.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.FinalizeSignupRequest true "Profile information"
// @Success 200 {object} dto.APIResponse "Registration finalized"
// @Failure 400 {object} dto.ErrorResponse "Missing required profile fields"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/finalize-signup [post]
func (c *StudentController) FinalizeSignup(ctx *gin.Context) {
	var req dto.FinalizeSignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	rec := &models.StudentRecord{
		ID:    req.UID,
		Name:  req.Name,
		Email: req.Email,
		Class: req.Class,
	}
	if err := c.studentService.FinalizeSignup(ctx.Request.Context(), rec, models.Role(req.Role)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"uid": req.UID, "name": req.Name}, "Registration successfully finalized."))
}

// CheckProfile reports whether a complete profile exists.
// @Summary Check profile completeness
// @Description Returns whether a record exists for the uid and has a class selected.
// @Tags users
// @Produce json
// @Param uid query string true "Subject id"
// @Success 200 {object} dto.CheckProfileResponse "Profile state"
// @Failure 400 {object} dto.CheckProfileResponse "Missing uid parameter"
// @Router /users/check-profile [get]
func (c *StudentController) CheckProfile(ctx *gin.Context) {
	uid := ctx.Query("uid")
	if uid == "" {
		ctx.JSON(http.StatusBadRequest, dto.CheckProfileResponse{Exists: false, Message: "Missing uid parameter."})
		return
	}

	exists, err := c.studentService.CheckProfile(ctx.Request.Context(), uid)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Profile incomplete, requires class selection."
	if exists {
		message = "Profile complete."
	}
	ctx.JSON(http.StatusOK, dto.CheckProfileResponse{Exists: exists, Message: message})
}
