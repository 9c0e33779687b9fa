package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tanmay/coachdesk/internal/app/controllers"
	"github.com/tanmay/coachdesk/internal/app/models"
	"github.com/tanmay/coachdesk/internal/middleware"
)

// SetupRouter configures all application routes.
func SetupRouter(
	router *gin.Engine,
	paymentController *controllers.PaymentController,
	attendanceController *controllers.AttendanceController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	// Payment endpoints carry no bearer credential: order creation only
	// requires a known studentId, and settlement authenticity is
	// established by the gateway signature.
	payments := v1.Group("/payments")
	{
		payments.POST("/orders", paymentController.CreateOrder)
		payments.PUT("/verify", paymentController.VerifyPayment)
	}

	users := v1.Group("/users")
	{
		users.POST("/finalize-signup", studentController.FinalizeSignup)
		users.GET("/check-profile", studentController.CheckProfile)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.Authenticate())
	{
		authenticated.GET("/students/me", studentController.Me)

		teacher := authenticated.Group("/teacher")
		teacher.Use(authMiddleware.RequireRole(models.RoleTeacher))
		{
			teacher.POST("/attendance", attendanceController.MarkAttendance)
			teacher.GET("/students", studentController.ListStudents)
		}
	}
}
