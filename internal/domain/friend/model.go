package friend

import (
	"time"

	"github.com/google/uuid"
)

// Friend is a recorded person, owned by exactly one user.
type Friend struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	FirstName   string    `gorm:"not null"`
	LastName    *string
	DateOfBirth *time.Time `gorm:"type:date"`
	Likes       *string
	Dislikes    *string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false;default:now()"`
}

// UserRelationship records how the owning user knows a friend
// ("coworker", "neighbor"). A friend may carry several labels; the pair
// (friend_id, relationship_type) is unique.
type UserRelationship struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	FriendID         uuid.UUID `gorm:"type:uuid;not null"`
	RelationshipType string    `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time `gorm:"autoUpdateTime:false;default:now()"`
}

func (UserRelationship) TableName() string {
	return "user_friend_relationships"
}

type CreateFriend struct {
	FirstName   string
	LastName    *string
	DateOfBirth *time.Time
	Likes       *string
	Dislikes    *string
	Notes       *string
}

type UpdateFriend struct {
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
	Likes       *string
	Dislikes    *string
	Notes       *string
}

type CreateUserRelationship struct {
	FriendID         uuid.UUID
	RelationshipType string
}

type UpdateUserRelationship struct {
	RelationshipType *string
}
