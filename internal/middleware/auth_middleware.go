package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lenslearn/backend/internal/app/models"
	"github.com/lenslearn/backend/internal/app/models/dto"
	"github.com/lenslearn/backend/internal/pkg/apperrors"
	"github.com/lenslearn/backend/internal/pkg/auth"
)

// ContextEmailKey is the gin context key holding the caller's verified email
const ContextEmailKey = "email"

// UserReader is the single store read the role check needs
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthMiddleware carries the request-entry guards: token verification and
// the role check that runs behind it.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      UserReader
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, users UserReader) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

// JWTAuth verifies the bearer token on every protected request. A missing
// header, a malformed or tampered token, and an expired token all
// short-circuit with 401 before any handler logic runs. On success the
// token's email claim is exposed on the context as the verified identity.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "unauthorized access")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "unauthorized access")
			errorDetail = errorDetail.WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			details := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				details = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "unauthorized access")
			errorDetail = errorDetail.WithDetails(details)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextEmailKey, claims.Email)

		c.Next()
	}
}

// AdminRequired gates admin-only routes. It must run after JWTAuth: the
// email it reads from the context is trusted as already authenticated. The
// role comes from the user record in the store, not from the token, so a
// stale token cannot keep admin access after a role change.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)
		if email == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "unauthorized access")
			errorDetail = errorDetail.WithDetails("Verified identity not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		user, err := m.users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "forbidden access")
				c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
				return
			}
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			return
		}

		if user.Role != models.RoleAdmin {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "forbidden access")
			errorDetail = errorDetail.WithDetails("Admin role required")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}
