package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"friendkb-go/internal/config"
	"friendkb-go/pkg/logger"
	"github.com/google/uuid"
)

func newTestAuth(ttl time.Duration) *Auth {
	log := logger.New(io.Discard, slog.LevelError, "json")
	return NewAuth(config.AuthConfig{Secret: "test-secret", TokenTTL: ttl}, log)
}

func TestAuthTokenRoundTrip(t *testing.T) {
	auth := newTestAuth(time.Hour)
	userID := uuid.New()

	token, err := auth.IssueToken(userID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	var gotID uuid.UUID
	var gotOK bool
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = UserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/friends", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if !gotOK || gotID != userID {
		t.Errorf("context user id: got %s (ok=%v), want %s", gotID, gotOK, userID)
	}
}

func TestAuthRejections(t *testing.T) {
	auth := newTestAuth(time.Hour)
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without valid token")
	}))

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/friends", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("got status %d, want 401", rec.Code)
			}
		})
	}
}

func TestAuthExpiredToken(t *testing.T) {
	auth := newTestAuth(-time.Minute)

	token, err := auth.IssueToken(uuid.New())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/friends", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", rec.Code)
	}
}

func TestAuthTokenSignedWithOtherSecret(t *testing.T) {
	auth := newTestAuth(time.Hour)
	other := NewAuth(
		config.AuthConfig{Secret: "different-secret", TokenTTL: time.Hour},
		logger.New(io.Discard, slog.LevelError, "json"),
	)

	token, err := other.IssueToken(uuid.New())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with foreign-signed token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/friends", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", rec.Code)
	}
}
