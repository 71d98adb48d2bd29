// Package scope centralizes the ownership filters every query must carry.
// Tables that only reference friend_id (friend_attributes, friend_groups,
// user_friend_relationships) are isolated through the friends table; the
// helper takes the user id as a required argument so a finder without a
// scope cannot be written.
package scope

import (
	"friendkb-go/internal/domain/repoerr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedFriendIDs is a subquery selecting the ids of friends owned by
// userID. Use it to filter any table that carries only friend_id:
//
//	db.Where("friend_id IN (?)", scope.OwnedFriendIDs(db, userID))
//
// The subquery renders into the parent statement, so SELECT, UPDATE and
// DELETE are all isolated by the same single round-trip.
func OwnedFriendIDs(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Table("friends").
		Select("id").
		Where("user_id = ?", userID)
}

// FriendOwned reports whether friendID exists and belongs to userID.
// Insert paths into friend-child tables must check this: the foreign key
// alone would accept a friend owned by someone else.
func FriendOwned(db *gorm.DB, userID, friendID uuid.UUID) (bool, error) {
	var count int64
	if err := db.Table("friends").
		Where("id = ? AND user_id = ?", friendID, userID).
		Count(&count).Error; err != nil {
		return false, repoerr.Map(err)
	}
	return count > 0, nil
}
