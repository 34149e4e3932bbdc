package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lenslearn/backend/internal/app/models"
	"github.com/lenslearn/backend/internal/app/models/dto"
	"github.com/lenslearn/backend/internal/app/services"
	"github.com/lenslearn/backend/internal/middleware"
)

// ClassController handles class-related operations
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{
		classService: classService,
	}
}

// GetClasses handles GET /classes
func (c *ClassController) GetClasses(ctx *gin.Context) {
	classes, err := c.classService.ListClasses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, classes)
}

// GetClassByID handles GET /classes/:id
func (c *ClassController) GetClassByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	class, err := c.classService.GetClass(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, class)
}

// CreateClass handles POST /classes
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	class := &models.Class{
		Title:          req.Title,
		Instructor:     req.Instructor,
		Image:          req.Image,
		Price:          req.Price,
		AvailableSeats: req.AvailableSeats,
	}

	if err := c.classService.CreateClass(ctx, class); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, class)
}

// UpdateClass handles PATCH /classes/:id. The patch is a generic
// partial-field merge; a status-only update is just the one-field case.
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	var patch models.ClassPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.classService.UpdateClass(ctx, id, &patch); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.classService.GetClass(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// parseIDParam parses the :id path parameter, answering 400 on failure
func parseIDParam(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, err
	}
	return id, nil
}
