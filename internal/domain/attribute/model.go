package attribute

import (
	"time"

	"github.com/google/uuid"
)

// Attribute is a per-friend key/value fact as stored: text plus a type
// tag. (friend_id, key) is unique, so there is one active value per key.
type Attribute struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FriendID  uuid.UUID `gorm:"type:uuid;not null"`
	Key       string    `gorm:"not null"`
	Value     string    `gorm:"not null"`
	ValueType Kind      `gorm:"not null;default:text"`
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;default:now()"`
}

func (Attribute) TableName() string {
	return "friend_attributes"
}

// DecodedValue parses the stored text under its tag.
func (a Attribute) DecodedValue() (Value, error) {
	return DecodeValue(a.Value, a.ValueType)
}

type CreateAttribute struct {
	FriendID uuid.UUID
	Key      string
	Value    Value
}

type UpdateAttribute struct {
	Value *Value
}
