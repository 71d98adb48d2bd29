package friend

import (
	"context"

	"friendkb-go/internal/domain/repo"
	"github.com/google/uuid"
)

type Repository interface {
	repo.Owned[Friend, CreateFriend, UpdateFriend]
	Transaction(ctx context.Context, fn func(Repository) error) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Friend, error)
}

// UserRelationshipRepository manages the labels describing how the user
// knows each friend. The table carries no user_id of its own; isolation
// runs through the friend join on every query.
type UserRelationshipRepository interface {
	repo.Owned[UserRelationship, CreateUserRelationship, UpdateUserRelationship]
	ListByFriend(ctx context.Context, userID, friendID uuid.UUID) ([]UserRelationship, error)
	FindByFriendAndType(ctx context.Context, userID, friendID uuid.UUID, relationshipType string) (*UserRelationship, error)
}
