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

// SelectionController handles a student's class selections
type SelectionController struct {
	selectionService services.SelectionService
}

// NewSelectionController creates a new SelectionController
func NewSelectionController(selectionService services.SelectionService) *SelectionController {
	return &SelectionController{
		selectionService: selectionService,
	}
}

// GetSelections handles GET /selectedClass. Runs behind JWTAuth; the query
// email must match the token's email.
func (c *SelectionController) GetSelections(ctx *gin.Context) {
	tokenEmail := ctx.GetString(middleware.ContextEmailKey)
	queryEmail := ctx.Query("email")

	selections, err := c.selectionService.ListSelections(ctx, tokenEmail, queryEmail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, selections)
}

// CreateSelection handles POST /selectedClass
func (c *SelectionController) CreateSelection(ctx *gin.Context) {
	var req dto.CreateSelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid selection data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	selection := &models.Selection{
		Email:   req.Email,
		ClassID: req.ClassID,
		Title:   req.Title,
		Price:   req.Price,
	}

	if err := c.selectionService.AddSelection(ctx, selection); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, selection)
}

// DeleteSelection handles DELETE /selectedClass/:id
func (c *SelectionController) DeleteSelection(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid selection ID")
		errorDetail = errorDetail.WithDetails("Selection ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.selectionService.RemoveSelection(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Selection removed"})
}
