package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lenslearn/backend/internal/app/controllers"
	"github.com/lenslearn/backend/internal/app/models"
	"github.com/lenslearn/backend/internal/app/services"
	"github.com/lenslearn/backend/internal/middleware"
	"github.com/lenslearn/backend/internal/pkg/apperrors"
	"github.com/lenslearn/backend/internal/pkg/auth"
)

// fakeUserStore backs both the user service and the role check in tests
type fakeUserStore struct {
	users map[string]*models.User
}

func (f *fakeUserStore) GetAll(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return apperrors.ErrUserAlreadyExists
	}
	user.ID = int64(len(f.users) + 1)
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) Update(_ context.Context, _ int64, _ *models.UserPatch) error {
	return nil
}

type fakeClassStore struct {
	classes map[int64]*models.Class
	patches map[int64]*models.ClassPatch
}

func (f *fakeClassStore) GetAll(_ context.Context) ([]*models.Class, error) {
	out := make([]*models.Class, 0, len(f.classes))
	for _, c := range f.classes {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClassStore) GetByID(_ context.Context, id int64) (*models.Class, error) {
	c, ok := f.classes[id]
	if !ok {
		return nil, apperrors.ErrClassNotFound
	}
	return c, nil
}

func (f *fakeClassStore) Create(_ context.Context, class *models.Class) error {
	class.ID = int64(len(f.classes) + 1)
	f.classes[class.ID] = class
	return nil
}

func (f *fakeClassStore) Update(_ context.Context, id int64, patch *models.ClassPatch) error {
	c, ok := f.classes[id]
	if !ok {
		return apperrors.ErrClassNotFound
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	f.patches[id] = patch
	return nil
}

type fakeInstructorStore struct{}

func (fakeInstructorStore) GetAll(_ context.Context) ([]*models.Instructor, error) {
	return []*models.Instructor{}, nil
}

type fakeSelectionStore struct {
	selections []*models.Selection
}

func (f *fakeSelectionStore) Create(_ context.Context, s *models.Selection) error {
	f.selections = append(f.selections, s)
	return nil
}

func (f *fakeSelectionStore) GetByEmail(_ context.Context, email string) ([]*models.Selection, error) {
	out := make([]*models.Selection, 0)
	for _, s := range f.selections {
		if s.Email == email {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSelectionStore) Delete(_ context.Context, _ int64) error { return nil }

type testEnv struct {
	router     *gin.Engine
	jwtService *auth.JWTService
	classes    *fakeClassStore
	users      *fakeUserStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &fakeUserStore{users: map[string]*models.User{
		"admin@x.com": {ID: 100, Email: "admin@x.com", Role: models.RoleAdmin},
	}}
	classes := &fakeClassStore{
		classes: map[int64]*models.Class{
			1: {ID: 1, Title: "Studio Lighting", Price: 19.99, Status: "pending"},
		},
		patches: map[int64]*models.ClassPatch{},
	}
	selections := &fakeSelectionStore{}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})

	userService := services.NewUserService(users)
	classService := services.NewClassService(classes)
	instructorService := services.NewInstructorService(fakeInstructorStore{})
	selectionService := services.NewSelectionService(selections)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, users)

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(jwtService),
		controllers.NewUserController(userService),
		controllers.NewClassController(classService),
		controllers.NewInstructorController(instructorService),
		controllers.NewSelectionController(selectionService),
		// Payment routes are exercised at the service level; the
		// controller only needs to exist for route registration here.
		controllers.NewPaymentController(nil),
		authMiddleware,
	)

	return &testEnv{router: router, jwtService: jwtService, classes: classes, users: users}
}

func (e *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := e.jwtService.IssueToken(email)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	return token
}

func TestIssueTokenEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/jwt", "", `{"email":"a@x.com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	claims, err := env.jwtService.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("claims email = %q, want %q", claims.Email, "a@x.com")
	}
}

func TestSelectedClassRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/selectedClass?email=a@x.com", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestSelectedClassNoEmailReturnsEmptyList(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "a@x.com")

	w := env.do(http.MethodGet, "/selectedClass", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("body = %q, want %q", body, "[]")
	}
}

func TestSelectedClassEmailMismatchForbidden(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "a@x.com")

	w := env.do(http.MethodGet, "/selectedClass?email=b@x.com", token, "")
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

// A student token must not be able to patch a class; the role gate reads
// the stored user record, not just the token.
func TestClassPatchRoleGating(t *testing.T) {
	env := newTestEnv(t)

	// Register a student user with the token's email.
	w := env.do(http.MethodPost, "/users", "", `{"email":"a@x.com","name":"A","role":"student"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create user status = %d, want 201", w.Code)
	}

	studentToken := env.tokenFor(t, "a@x.com")
	w = env.do(http.MethodPatch, "/classes/1", studentToken, `{"status":"approved"}`)
	if w.Code != http.StatusForbidden {
		t.Errorf("student patch status = %d, want 403", w.Code)
	}
	if env.classes.classes[1].Status != "pending" {
		t.Errorf("class status = %q, want unchanged %q", env.classes.classes[1].Status, "pending")
	}

	adminToken := env.tokenFor(t, "admin@x.com")
	w = env.do(http.MethodPatch, "/classes/1", adminToken, `{"status":"approved"}`)
	if w.Code != http.StatusOK {
		t.Errorf("admin patch status = %d, want 200", w.Code)
	}
	if env.classes.classes[1].Status != "approved" {
		t.Errorf("class status = %q, want %q", env.classes.classes[1].Status, "approved")
	}

	// Only the supplied field reached the store.
	patch := env.classes.patches[1]
	if patch == nil || patch.Status == nil || *patch.Status != "approved" {
		t.Fatalf("patch = %+v, want status-only patch", patch)
	}
	if patch.Title != nil || patch.Price != nil || patch.Instructor != nil ||
		patch.Image != nil || patch.AvailableSeats != nil || patch.Enrolled != nil {
		t.Errorf("patch carries fields that were not supplied: %+v", patch)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/users", "", `{"email":"a@x.com"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("first create status = %d, want 201", w.Code)
	}

	w = env.do(http.MethodPost, "/users", "", `{"email":"a@x.com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("second create status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "User already exists") {
		t.Errorf("body = %q, want already-exists message", w.Body.String())
	}
}

func TestGetUserRole(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/users/admin@x.com", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"role":"admin"`) {
		t.Errorf("body = %q, want role admin", w.Body.String())
	}

	w = env.do(http.MethodGet, "/users/ghost@x.com", "", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
