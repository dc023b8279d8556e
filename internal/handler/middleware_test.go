package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/msomdec/user-admin/internal/handler"
	"github.com/msomdec/user-admin/internal/repository/sqlite"
	"github.com/msomdec/user-admin/internal/service"
	"github.com/msomdec/user-admin/internal/token"
)

const testJWTSecret = "test-secret-for-handler-tests-0123456789"

func newTestServices(t *testing.T) (*service.AuthService, *service.UserService) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	hasher := service.NewPasswordHasher(bcrypt.MinCost)
	return service.NewAuthService(db.Users(), token.NewService(testJWTSecret), hasher),
		service.NewUserService(db.Users(), hasher)
}

// createAndLogin stores a user and returns its id and a fresh bearer token.
func createAndLogin(t *testing.T, auth *service.AuthService, users *service.UserService, email string, admin bool) (int64, string) {
	t.Helper()
	ctx := context.Background()
	id, err := users.Create(ctx, service.CreateUserInput{
		Name:     "Test User",
		Email:    email,
		Age:      30,
		Password: "password123",
		IsAdmin:  admin,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	tok, err := auth.Login(ctx, email, "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return id, tok
}

func mustNotRun(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body["message"]
}

func TestRequireAuth_ValidToken(t *testing.T) {
	auth, users := newTestServices(t)
	id, tok := createAndLogin(t, auth, users, "valid@example.com", false)

	var gotID int64
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := handler.UserFromContext(r.Context()); user != nil {
			gotID = user.ID
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotID != id {
		t.Fatalf("expected principal %d in context, got %d", id, gotID)
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	auth, _ := newTestServices(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, mustNotRun(t)).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg == "" {
		t.Fatal("expected a message in the error body")
	}
}

func TestRequireAuth_InvalidTokens(t *testing.T) {
	auth, users := newTestServices(t)
	id, tok := createAndLogin(t, auth, users, "tamper@example.com", false)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(id, 10),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	tests := map[string]string{
		"garbage":      "Bearer invalid.jwt.token",
		"tampered":     "Bearer " + tok[:len(tok)-5] + "XXXXX",
		"expired":      "Bearer " + expired,
		"wrong scheme": "Basic " + tok,
	}

	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", header)
			w := httptest.NewRecorder()

			handler.RequireAuth(auth, mustNotRun(t)).ServeHTTP(w, req)

			if w.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d", w.Code)
			}
		})
	}
}

func TestRequireAuth_DeletedPrincipal(t *testing.T) {
	auth, users := newTestServices(t)
	id, tok := createAndLogin(t, auth, users, "gone@example.com", false)

	if err := users.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, mustNotRun(t)).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	auth, users := newTestServices(t)
	_, userTok := createAndLogin(t, auth, users, "plain@example.com", false)
	_, adminTok := createAndLogin(t, auth, users, "boss@example.com", true)

	var reached bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	h := handler.RequireAuth(auth, handler.RequireAdmin(auth, inner))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+userTok)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("non-admin: expected 403, got %d", w.Code)
	}
	if reached {
		t.Fatal("non-admin: inner handler should not be called")
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminTok)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", w.Code)
	}
	if !reached {
		t.Fatal("admin: inner handler should be called")
	}
}

func TestRequireAdmin_WithoutPrincipal(t *testing.T) {
	auth, _ := newTestServices(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()

	handler.RequireAdmin(auth, mustNotRun(t)).ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestUserFromContext_Empty(t *testing.T) {
	if user := handler.UserFromContext(context.Background()); user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}
