// Package repo defines the capability set every entity repository
// implements. Entity, CreateInput and UpdateInput are fixed per
// implementation; the owning user id is a mandatory parameter on every
// call so an unscoped query cannot be written against this contract.
package repo

import (
	"context"

	"github.com/google/uuid"
)

// Owned is the generic CRUD contract for user-owned entities.
//
// FindByID returns ErrNotFound both when the id does not exist and when it
// exists under a different owner; callers cannot distinguish the two.
// Create returns ErrDuplicate on a unique-constraint violation and
// ErrForeignKey when a referenced parent is missing (or not owned by
// userID). Update merges only the fields set on the input and returns the
// post-update row. Delete reports ErrNotFound when nothing matched, so a
// repeated delete of the same id fails instead of silently succeeding.
type Owned[E any, C any, U any] interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*E, error)
	Create(ctx context.Context, userID uuid.UUID, input C) (*E, error)
	Update(ctx context.Context, userID, id uuid.UUID, input U) (*E, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
