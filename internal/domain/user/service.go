package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"friendkb-go/internal/domain/repoerr"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Create(ctx, CreateUser{Email: email, PasswordHash: string(hash)})
}

// Authenticate returns ErrInvalidCredentials for both an unknown email and
// a wrong password, so callers cannot probe which emails exist.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	found, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return found, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) UpdateEmail(ctx context.Context, id uuid.UUID, email string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	return s.repo.Update(ctx, id, UpdateUser{Email: &email})
}

func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, password string) (*User, error) {
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	hashed := string(hash)
	return s.repo.Update(ctx, id, UpdateUser{PasswordHash: &hashed})
}

// Delete removes the user; the store cascades to friends, groups and all
// their dependents.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
