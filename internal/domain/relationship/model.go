package relationship

import (
	"time"

	"github.com/google/uuid"
)

// Relationship is a directed-pair edge between two friends of the same
// user. AToB is required; a nil BToA means the edge is symmetric and AToB
// reads the same in both directions.
type Relationship struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FriendAID uuid.UUID `gorm:"type:uuid;not null"`
	FriendBID uuid.UUID `gorm:"type:uuid;not null"`
	AToB      string    `gorm:"not null"`
	BToA      *string
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;default:now()"`
}

func (Relationship) TableName() string {
	return "friend_relationships"
}

type CreateRelationship struct {
	FriendAID uuid.UUID
	FriendBID uuid.UUID
	AToB      string
	BToA      *string
}

type UpdateRelationship struct {
	AToB *string
	BToA *string
	// ClearBToA resets b_to_a to NULL, making the edge symmetric again.
	// Ignored when BToA is set.
	ClearBToA bool
}
