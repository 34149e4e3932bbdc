package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lenslearn/backend/internal/app/models/dto"
	"github.com/lenslearn/backend/internal/pkg/auth"
)

// AuthController issues access tokens
type AuthController struct {
	jwtService *auth.JWTService
}

// NewAuthController creates a new AuthController
func NewAuthController(jwtService *auth.JWTService) *AuthController {
	return &AuthController{
		jwtService: jwtService,
	}
}

// IssueToken handles POST /jwt. The supplied claims are signed as-is; no
// credential check happens here, the token only fixes the caller's identity
// for the protected routes.
func (c *AuthController) IssueToken(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid token request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	token, err := c.jwtService.IssueToken(req.Email)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Failed to issue token")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
