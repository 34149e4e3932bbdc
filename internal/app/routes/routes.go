package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lenslearn/backend/internal/app/controllers"
	"github.com/lenslearn/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	classController *controllers.ClassController,
	instructorController *controllers.InstructorController,
	selectionController *controllers.SelectionController,
	paymentController *controllers.PaymentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.POST("/jwt", authController.IssueToken)

	router.GET("/users", userController.GetUsers)
	router.POST("/users", userController.CreateUser)
	router.GET("/users/:email", userController.GetUserRole)

	router.GET("/classes", classController.GetClasses)
	router.GET("/classes/:id", classController.GetClassByID)

	router.GET("/instructors", instructorController.GetInstructors)

	router.POST("/selectedClass", selectionController.CreateSelection)
	router.DELETE("/selectedClass/:id", selectionController.DeleteSelection)

	router.POST("/save-payment", paymentController.SavePayment)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/selectedClass", selectionController.GetSelections)

		// Two paths for the same intent operation; both are kept reachable.
		authenticated.POST("/create-payment-intent", paymentController.CreateIntent)
		authenticated.POST("/payments", paymentController.CreateIntent)

		authenticated.GET("/save-payment", paymentController.GetPayments)

		// Admin-only routes. The role check reads the user record, so it
		// runs strictly behind token verification.
		admin := authenticated.Group("")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.PATCH("/users/:id", userController.UpdateUser)
			admin.POST("/classes", classController.CreateClass)
			admin.PATCH("/classes/:id", classController.UpdateClass)
		}
	}
}
