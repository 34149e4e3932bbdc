package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lenslearn/backend/internal/app/services"
	"github.com/lenslearn/backend/internal/middleware"
)

// InstructorController handles instructor listing
type InstructorController struct {
	instructorService services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// GetInstructors handles GET /instructors
func (c *InstructorController) GetInstructors(ctx *gin.Context) {
	instructors, err := c.instructorService.ListInstructors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, instructors)
}
