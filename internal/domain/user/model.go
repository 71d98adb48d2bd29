package user

import (
	"time"

	"github.com/google/uuid"
)

// User owns every other row in the system. PasswordHash never leaves the
// domain layer; transport responses map to their own types.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false;default:now()"`
}

// CreateUser carries the fields required to insert a user; id and
// timestamps are server-assigned.
type CreateUser struct {
	Email        string
	PasswordHash string
}

// UpdateUser is a partial update: nil fields are left unchanged.
type UpdateUser struct {
	Email        *string
	PasswordHash *string
}
