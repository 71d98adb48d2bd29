package attribute

import (
	"context"

	attributedomain "friendkb-go/internal/domain/attribute"
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

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(attributedomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*attributedomain.Attribute, error) {
	var found attributedomain.Attribute
	if err := r.db.WithContext(ctx).
		Where("id = ? AND friend_id IN (?)", id, scope.OwnedFriendIDs(r.db, userID)).
		First(&found).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return &found, nil
}

func (r *PostgresRepository) ListByFriend(ctx context.Context, userID, friendID uuid.UUID) ([]attributedomain.Attribute, error) {
	var attributes []attributedomain.Attribute
	if err := r.db.WithContext(ctx).
		Where("friend_id = ? AND friend_id IN (?)", friendID, scope.OwnedFriendIDs(r.db, userID)).
		Order("key asc").
		Find(&attributes).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return attributes, nil
}

func (r *PostgresRepository) FindByFriendAndKey(ctx context.Context, userID, friendID uuid.UUID, key string) (*attributedomain.Attribute, error) {
	var found attributedomain.Attribute
	if err := r.db.WithContext(ctx).
		Where("friend_id = ? AND key = ? AND friend_id IN (?)",
			friendID, key, scope.OwnedFriendIDs(r.db, userID)).
		First(&found).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return &found, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID uuid.UUID, input attributedomain.CreateAttribute) (*attributedomain.Attribute, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	text, tag := input.Value.Encode()
	created := attributedomain.Attribute{
		ID:        id,
		FriendID:  input.FriendID,
		Key:       input.Key,
		Value:     text,
		ValueType: tag,
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned, err := scope.FriendOwned(tx, userID, input.FriendID)
		if err != nil {
			return err
		}
		if !owned {
			return repoerr.ErrForeignKey
		}
		return repoerr.Map(tx.Create(&created).Error)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Upsert replaces value and tag for an existing (friend_id, key) in a
// single INSERT ... ON CONFLICT statement; the updated_at trigger fires on
// the conflict-update path like any other mutation.
func (r *PostgresRepository) Upsert(ctx context.Context, userID uuid.UUID, input attributedomain.CreateAttribute) (*attributedomain.Attribute, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	text, tag := input.Value.Encode()

	var result *attributedomain.Attribute
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned, err := scope.FriendOwned(tx, userID, input.FriendID)
		if err != nil {
			return err
		}
		if !owned {
			return repoerr.ErrForeignKey
		}

		row := attributedomain.Attribute{
			ID:        id,
			FriendID:  input.FriendID,
			Key:       input.Key,
			Value:     text,
			ValueType: tag,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "friend_id"}, {Name: "key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"value":      text,
				"value_type": tag,
			}),
		}).Create(&row).Error; err != nil {
			return repoerr.Map(err)
		}

		// On the conflict path the row keeps its original id; re-read for
		// the authoritative identity and timestamps.
		var stored attributedomain.Attribute
		if err := tx.Where("friend_id = ? AND key = ?", input.FriendID, input.Key).
			First(&stored).Error; err != nil {
			return repoerr.Map(err)
		}
		result = &stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, userID, id uuid.UUID, input attributedomain.UpdateAttribute) (*attributedomain.Attribute, error) {
	updates := map[string]interface{}{}
	if input.Value != nil {
		text, tag := input.Value.Encode()
		updates["value"] = text
		updates["value_type"] = tag
	}
	if len(updates) == 0 {
		return r.FindByID(ctx, userID, id)
	}

	result := r.db.WithContext(ctx).Model(&attributedomain.Attribute{}).
		Where("id = ? AND friend_id IN (?)", id, scope.OwnedFriendIDs(r.db, userID)).
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
		Where("id = ? AND friend_id IN (?)", id, scope.OwnedFriendIDs(r.db, userID)).
		Delete(&attributedomain.Attribute{})
	if result.Error != nil {
		return repoerr.Map(result.Error)
	}
	if result.RowsAffected == 0 {
		return repoerr.ErrNotFound
	}
	return nil
}
