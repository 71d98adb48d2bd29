package relationship

import (
	"context"

	relationshipdomain "friendkb-go/internal/domain/relationship"
	"friendkb-go/internal/domain/repoerr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(relationshipdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*relationshipdomain.Relationship, error) {
	var found relationshipdomain.Relationship
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&found).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return &found, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]relationshipdomain.Relationship, error) {
	var relationships []relationshipdomain.Relationship
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&relationships).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return relationships, nil
}

func (r *PostgresRepository) ListByFriend(ctx context.Context, userID, friendID uuid.UUID) ([]relationshipdomain.Relationship, error) {
	var relationships []relationshipdomain.Relationship
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND (friend_a_id = ? OR friend_b_id = ?)", userID, friendID, friendID).
		Order("created_at desc").
		Find(&relationships).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return relationships, nil
}

func (r *PostgresRepository) FindBetween(ctx context.Context, userID, friendAID, friendBID uuid.UUID) (*relationshipdomain.Relationship, error) {
	var found relationshipdomain.Relationship
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND ((friend_a_id = ? AND friend_b_id = ?) OR (friend_a_id = ? AND friend_b_id = ?))",
			userID, friendAID, friendBID, friendBID, friendAID).
		First(&found).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return &found, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID uuid.UUID, input relationshipdomain.CreateRelationship) (*relationshipdomain.Relationship, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	created := relationshipdomain.Relationship{
		ID:        id,
		UserID:    userID,
		FriendAID: input.FriendAID,
		FriendBID: input.FriendBID,
		AToB:      input.AToB,
		BToA:      input.BToA,
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Both endpoints must be the caller's friends.
		var count int64
		if err := tx.Table("friends").
			Where("id IN (?, ?) AND user_id = ?", input.FriendAID, input.FriendBID, userID).
			Count(&count).Error; err != nil {
			return repoerr.Map(err)
		}
		if count != 2 {
			return repoerr.ErrForeignKey
		}
		return repoerr.Map(tx.Create(&created).Error)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *PostgresRepository) Update(ctx context.Context, userID, id uuid.UUID, input relationshipdomain.UpdateRelationship) (*relationshipdomain.Relationship, error) {
	updates := map[string]interface{}{}
	if input.AToB != nil {
		updates["a_to_b"] = *input.AToB
	}
	if input.BToA != nil {
		updates["b_to_a"] = *input.BToA
	} else if input.ClearBToA {
		updates["b_to_a"] = nil
	}
	if len(updates) == 0 {
		return r.FindByID(ctx, userID, id)
	}

	result := r.db.WithContext(ctx).Model(&relationshipdomain.Relationship{}).
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
		Delete(&relationshipdomain.Relationship{})
	if result.Error != nil {
		return repoerr.Map(result.Error)
	}
	if result.RowsAffected == 0 {
		return repoerr.ErrNotFound
	}
	return nil
}
