package group

import (
	"context"

	frienddomain "friendkb-go/internal/domain/friend"
	groupdomain "friendkb-go/internal/domain/group"
	"friendkb-go/internal/domain/repoerr"
	"friendkb-go/internal/repository/postgres/scope"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*groupdomain.Group, error) {
	var found groupdomain.Group
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&found).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return &found, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]groupdomain.Group, error) {
	var groups []groupdomain.Group
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name asc").
		Find(&groups).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return groups, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID uuid.UUID, input groupdomain.CreateGroup) (*groupdomain.Group, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	created := groupdomain.Group{
		ID:          id,
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return &created, nil
}

func (r *PostgresRepository) Update(ctx context.Context, userID, id uuid.UUID, input groupdomain.UpdateGroup) (*groupdomain.Group, error) {
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if len(updates) == 0 {
		return r.FindByID(ctx, userID, id)
	}

	result := r.db.WithContext(ctx).Model(&groupdomain.Group{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if result.Error != nil {
		return nil, repoerr.Map(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, repoerr.ErrNotFound
	}

	return r.FindByID(ctx, userID, id)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&groupdomain.Group{})
	if result.Error != nil {
		return repoerr.Map(result.Error)
	}
	if result.RowsAffected == 0 {
		return repoerr.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) AddFriend(ctx context.Context, userID, groupID, friendID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&groupdomain.Group{}).
			Where("id = ? AND user_id = ?", groupID, userID).
			Count(&count).Error; err != nil {
			return repoerr.Map(err)
		}
		if count == 0 {
			return repoerr.ErrNotFound
		}

		owned, err := scope.FriendOwned(tx, userID, friendID)
		if err != nil {
			return err
		}
		if !owned {
			return repoerr.ErrForeignKey
		}

		// Re-adding an existing member is a no-op.
		membership := groupdomain.Membership{FriendID: friendID, GroupID: groupID}
		return repoerr.Map(tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&membership).Error)
	})
}

func (r *PostgresRepository) RemoveFriend(ctx context.Context, userID, groupID, friendID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND friend_id = ? AND friend_id IN (?)",
			groupID, friendID, scope.OwnedFriendIDs(r.db, userID)).
		Delete(&groupdomain.Membership{})
	if result.Error != nil {
		return repoerr.Map(result.Error)
	}
	if result.RowsAffected == 0 {
		return repoerr.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ListFriends(ctx context.Context, userID, groupID uuid.UUID) ([]frienddomain.Friend, error) {
	var friends []frienddomain.Friend
	if err := r.db.WithContext(ctx).
		Table("friends").
		Joins("join friend_groups on friend_groups.friend_id = friends.id").
		Where("friend_groups.group_id = ? AND friends.user_id = ?", groupID, userID).
		Order("friends.first_name asc").
		Find(&friends).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return friends, nil
}

func (r *PostgresRepository) ListByFriend(ctx context.Context, userID, friendID uuid.UUID) ([]groupdomain.Group, error) {
	var groups []groupdomain.Group
	if err := r.db.WithContext(ctx).
		Table("groups").
		Joins("join friend_groups on friend_groups.group_id = groups.id").
		Where("friend_groups.friend_id = ? AND groups.user_id = ?", friendID, userID).
		Order("groups.name asc").
		Find(&groups).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return groups, nil
}
