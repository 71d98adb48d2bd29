package group

import (
	"time"

	"github.com/google/uuid"
)

// Group is a user-owned tag for organizing friends.
type Group struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"not null"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false;default:now()"`
}

// Membership is the friend/group join row. It has no identity of its own;
// the composite key is the whole row.
type Membership struct {
	FriendID uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (Membership) TableName() string {
	return "friend_groups"
}

type CreateGroup struct {
	Name        string
	Description *string
}

type UpdateGroup struct {
	Name        *string
	Description *string
}
