package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/techted89/redtedcasino/internal/model"
	"github.com/techted89/redtedcasino/pkg/token"
)

var secret = []byte("test-secret")

func protectedEndpoint(t *testing.T, admin bool) http.Handler {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ClaimsFromContext(r.Context()); !ok {
			t.Error("claims missing from request context")
		}
		w.WriteHeader(http.StatusOK)
	})

	var h http.Handler = inner
	if admin {
		h = AdminOnly(h)
	}
	return Auth(secret)(h)
}

func bearerFor(t *testing.T, user *model.User) string {
	t.Helper()
	tok, err := token.GenerateAccessToken(user, secret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + tok
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var res struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return res.Message
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	protectedEndpoint(t, false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Unauthorized: Token is missing" {
		t.Errorf("message = %q", got)
	}
}

func TestAuthRejectsNonBearerHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	rec := httptest.NewRecorder()
	protectedEndpoint(t, false).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	rec := httptest.NewRecorder()
	protectedEndpoint(t, false).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Forbidden: Token is invalid or expired" {
		t.Errorf("message = %q", got)
	}
}

func TestAuthRejectsWrongKey(t *testing.T) {
	tok, err := token.GenerateAccessToken(&model.User{ID: 1, Username: "bob"}, []byte("other-secret"), time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	rec := httptest.NewRecorder()
	protectedEndpoint(t, false).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestAuthPassesValidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", bearerFor(t, &model.User{ID: 1, Username: "bob"}))

	rec := httptest.NewRecorder()
	protectedEndpoint(t, false).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAdminOnlyRejectsNonAdmin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", bearerFor(t, &model.User{ID: 1, Username: "bob"}))

	rec := httptest.NewRecorder()
	protectedEndpoint(t, true).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestAdminOnlyPassesAdmin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", bearerFor(t, &model.User{ID: 2, Username: "root", IsAdmin: true}))

	rec := httptest.NewRecorder()
	protectedEndpoint(t, true).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
