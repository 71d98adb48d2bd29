package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the root-entity repository. Users are the isolation scope
// themselves, so unlike the owned repositories there is no separate scope
// parameter: a caller can only reach its own id.
type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, input CreateUser) (*User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUser) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
