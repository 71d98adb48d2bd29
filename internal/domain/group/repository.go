package group

import (
	"context"

	frienddomain "friendkb-go/internal/domain/friend"
	"friendkb-go/internal/domain/repo"
	"github.com/google/uuid"
)

type Repository interface {
	repo.Owned[Group, CreateGroup, UpdateGroup]
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Group, error)

	// AddFriend is idempotent: adding an existing member is a no-op.
	// Both the group and the friend must belong to userID.
	AddFriend(ctx context.Context, userID, groupID, friendID uuid.UUID) error
	// RemoveFriend reports ErrNotFound when the friend was not a member.
	RemoveFriend(ctx context.Context, userID, groupID, friendID uuid.UUID) error
	ListFriends(ctx context.Context, userID, groupID uuid.UUID) ([]frienddomain.Friend, error)
	ListByFriend(ctx context.Context, userID, friendID uuid.UUID) ([]Group, error)
}
