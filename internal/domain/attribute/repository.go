package attribute

import (
	"context"

	"friendkb-go/internal/domain/repo"
	"github.com/google/uuid"
)

type Repository interface {
	repo.Owned[Attribute, CreateAttribute, UpdateAttribute]
	Transaction(ctx context.Context, fn func(Repository) error) error
	ListByFriend(ctx context.Context, userID, friendID uuid.UUID) ([]Attribute, error)
	FindByFriendAndKey(ctx context.Context, userID, friendID uuid.UUID, key string) (*Attribute, error)

	// Upsert replaces value and tag in place for an existing
	// (friend_id, key) pair, as one atomic statement.
	Upsert(ctx context.Context, userID uuid.UUID, input CreateAttribute) (*Attribute, error)
}
