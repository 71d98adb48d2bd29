package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"friendkb-go/internal/config"
	"friendkb-go/internal/domain/repoerr"
	userdomain "friendkb-go/internal/domain/user"
	"friendkb-go/internal/transport/httpserver/middleware"
	"friendkb-go/pkg/logger"
	"github.com/google/uuid"
)

type fakeUserRepository struct {
	rows map[uuid.UUID]userdomain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{rows: make(map[uuid.UUID]userdomain.User)}
}

func (f *fakeUserRepository) Transaction(ctx context.Context, fn func(userdomain.Repository) error) error {
	return fn(f)
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*userdomain.User, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, repoerr.ErrNotFound
	}
	return &row, nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	for _, row := range f.rows {
		if row.Email == email {
			return &row, nil
		}
	}
	return nil, repoerr.ErrNotFound
}

func (f *fakeUserRepository) Create(ctx context.Context, input userdomain.CreateUser) (*userdomain.User, error) {
	for _, row := range f.rows {
		if row.Email == input.Email {
			return nil, fmt.Errorf("%w: users_email_key", repoerr.ErrDuplicate)
		}
	}
	row := userdomain.User{ID: uuid.New(), Email: input.Email, PasswordHash: input.PasswordHash}
	f.rows[row.ID] = row
	return &row, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, id uuid.UUID, input userdomain.UpdateUser) (*userdomain.User, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, repoerr.ErrNotFound
	}
	if input.Email != nil {
		row.Email = *input.Email
	}
	if input.PasswordHash != nil {
		row.PasswordHash = *input.PasswordHash
	}
	f.rows[id] = row
	return &row, nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.rows[id]; !ok {
		return repoerr.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func newTestHandlers() *Handlers {
	log := logger.New(io.Discard, slog.LevelError, "json")
	auth := middleware.NewAuth(config.AuthConfig{Secret: "test-secret", TokenTTL: time.Hour}, log)
	users := userdomain.NewService(newFakeUserRepository())
	return New(log, auth, users, nil, nil, nil, nil)
}

func postRegister(t *testing.T, h *Handlers, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Register(rec, req)
	return rec
}

func TestRegisterShortPassword(t *testing.T) {
	h := newTestHandlers()

	rec := postRegister(t, h, `{"email":"nora@example.com","password":"short"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400: %s", rec.Code, rec.Body.String())
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if envelope.Error.Code != "invalid_request" {
		t.Errorf("got code %q, want invalid_request", envelope.Error.Code)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	h := newTestHandlers()

	for _, body := range []string{
		`{"email":"","password":"long enough"}`,
		`{"email":"nora@example.com","password":""}`,
		`not json`,
	} {
		rec := postRegister(t, h, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: got status %d, want 400", body, rec.Code)
		}
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	h := newTestHandlers()

	rec := postRegister(t, h, `{"email":"nora@example.com","password":"correct horse"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("no token issued")
	}
	if resp.User.Email != "nora@example.com" {
		t.Errorf("got email %q, want nora@example.com", resp.User.Email)
	}
}
