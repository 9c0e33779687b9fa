package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanmay/coachdesk/internal/app/models/dto"
	"github.com/tanmay/coachdesk/internal/app/services"
	"github.com/tanmay/coachdesk/internal/middleware"
)

// AttendanceController handles attendance marking.
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController.
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// MarkAttendance records one attendance entry for each present student.
// @Summary Mark attendance for a cohort
// @Description Appends one attendance entry per present student in a single all-or-nothing batch. Unknown student ids are skipped.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkAttendanceRequest true "Present student ids and teacher display name"
// @Success 200 {object} dto.MarkAttendanceResponse "Attendance marked"
// @Failure 400 {object} dto.ErrorResponse "Malformed body or empty batch"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid credential"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a teacher"
// @Failure 500 {object} dto.ErrorResponse "Batch rejected by the store"
// @Router /teacher/attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	marked, err := c.attendanceService.MarkPresent(ctx.Request.Context(), req.PresentStudentUIDs, req.TeacherName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MarkAttendanceResponse{
		Message: "Attendance marked successfully.",
		Marked:  marked,
	})
}
