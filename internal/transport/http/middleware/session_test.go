package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"srms/internal/domain/auth"
	"srms/internal/platform/store"
)

func sessionFixture(t *testing.T) (*auth.Gate, http.Handler) {
	t.Helper()
	gate := auth.NewGate(store.NewMemoryStore())
	if err := gate.Initialize(); err != nil {
		t.Fatalf("initialize error: %v", err)
	}
	handler := Session("test-secret", gate)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	return gate, handler
}

func TestSessionRejectsMissingToken(t *testing.T) {
	_, handler := sessionFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/staff", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSessionRejectsBadToken(t *testing.T) {
	gate, handler := sessionFixture(t)
	if ok, _ := gate.Login(auth.DefaultPassword); !ok {
		t.Fatal("login failed")
	}

	req := httptest.NewRequest(http.MethodGet, "/staff", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSessionAcceptsTokenWhileAuthenticated(t *testing.T) {
	gate, handler := sessionFixture(t)
	if ok, _ := gate.Login(auth.DefaultPassword); !ok {
		t.Fatal("login failed")
	}
	token, err := auth.GenerateToken("test-secret", "session-1", time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// Logout kills the session even though the token itself is still valid.
	if err := gate.Logout(); err != nil {
		t.Fatalf("logout error: %v", err)
	}
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}
