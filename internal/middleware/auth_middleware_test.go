package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lenslearn/backend/internal/app/models"
	"github.com/lenslearn/backend/internal/pkg/apperrors"
	"github.com/lenslearn/backend/internal/pkg/auth"
)

type fakeUserReader struct {
	users map[string]*models.User
}

func (f *fakeUserReader) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func newTestRouter(t *testing.T, users map[string]*models.User) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	mw := NewAuthMiddleware(jwtService, &fakeUserReader{users: users})

	router := gin.New()
	protected := router.Group("", mw.JWTAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextEmailKey))
	})

	admin := protected.Group("", mw.AdminRequired())
	admin.GET("/admin-only", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return router, jwtService
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := doRequest(router, "/whoami", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthMalformedToken(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := doRequest(router, "/whoami", "Bearer not.a.token")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    -time.Minute,
		TokenIssuer: "test",
	})
	token, err := expired.IssueToken("a@x.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	w := doRequest(router, "/whoami", "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthValidTokenExposesEmail(t *testing.T) {
	router, jwtService := newTestRouter(t, nil)

	token, err := jwtService.IssueToken("a@x.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	w := doRequest(router, "/whoami", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "a@x.com" {
		t.Errorf("identity = %q, want %q", w.Body.String(), "a@x.com")
	}
}

func TestAdminRequired(t *testing.T) {
	users := map[string]*models.User{
		"admin@x.com":   {ID: 1, Email: "admin@x.com", Role: models.RoleAdmin},
		"student@x.com": {ID: 2, Email: "student@x.com", Role: models.RoleStudent},
	}
	router, jwtService := newTestRouter(t, users)

	tests := []struct {
		name  string
		email string
		want  int
	}{
		{"admin passes", "admin@x.com", http.StatusOK},
		{"student forbidden", "student@x.com", http.StatusForbidden},
		{"unknown user forbidden", "ghost@x.com", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.IssueToken(tt.email)
			if err != nil {
				t.Fatalf("IssueToken: %v", err)
			}

			w := doRequest(router, "/admin-only", "Bearer "+token)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
