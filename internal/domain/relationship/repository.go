package relationship

import (
	"context"

	"friendkb-go/internal/domain/repo"
	"github.com/google/uuid"
)

type Repository interface {
	repo.Owned[Relationship, CreateRelationship, UpdateRelationship]
	Transaction(ctx context.Context, fn func(Repository) error) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Relationship, error)
	// ListByFriend returns edges where the friend sits on either side.
	ListByFriend(ctx context.Context, userID, friendID uuid.UUID) ([]Relationship, error)
	// FindBetween locates the edge for an unordered pair: the row may be
	// stored as (a, b) or (b, a). ErrNotFound when the pair has no edge.
	FindBetween(ctx context.Context, userID, friendAID, friendBID uuid.UUID) (*Relationship, error)
}
