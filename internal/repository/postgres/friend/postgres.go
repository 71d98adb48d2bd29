package friend

import (
	"context"

	frienddomain "friendkb-go/internal/domain/friend"
	"friendkb-go/internal/domain/repoerr"
	"friendkb-go/internal/repository/postgres/scope"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(frienddomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*frienddomain.Friend, error) {
	var found frienddomain.Friend
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&found).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return &found, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]frienddomain.Friend, error) {
	var friends []frienddomain.Friend
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("first_name asc").
		Find(&friends).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return friends, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID uuid.UUID, input frienddomain.CreateFriend) (*frienddomain.Friend, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	created := frienddomain.Friend{
		ID:          id,
		UserID:      userID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: input.DateOfBirth,
		Likes:       input.Likes,
		Dislikes:    input.Dislikes,
		Notes:       input.Notes,
	}
	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return &created, nil
}

func (r *PostgresRepository) Update(ctx context.Context, userID, id uuid.UUID, input frienddomain.UpdateFriend) (*frienddomain.Friend, error) {
	updates := map[string]interface{}{}
	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.DateOfBirth != nil {
		updates["date_of_birth"] = *input.DateOfBirth
	}
	if input.Likes != nil {
		updates["likes"] = *input.Likes
	}
	if input.Dislikes != nil {
		updates["dislikes"] = *input.Dislikes
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if len(updates) == 0 {
		return r.FindByID(ctx, userID, id)
	}

	result := r.db.WithContext(ctx).Model(&frienddomain.Friend{}).
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
		Delete(&frienddomain.Friend{})
	if result.Error != nil {
		return repoerr.Map(result.Error)
	}
	if result.RowsAffected == 0 {
		return repoerr.ErrNotFound
	}
	return nil
}

// UserRelationshipRepository persists the user-to-friend labels. The table
// has no user_id column, so every statement is scoped through the owned
// friend ids subquery.
type UserRelationshipRepository struct {
	db *gorm.DB
}

func NewUserRelationshipPostgres(db *gorm.DB) *UserRelationshipRepository {
	return &UserRelationshipRepository{db: db}
}

func (r *UserRelationshipRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*frienddomain.UserRelationship, error) {
	var found frienddomain.UserRelationship
	if err := r.db.WithContext(ctx).
		Where("id = ? AND friend_id IN (?)", id, scope.OwnedFriendIDs(r.db, userID)).
		First(&found).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return &found, nil
}

func (r *UserRelationshipRepository) ListByFriend(ctx context.Context, userID, friendID uuid.UUID) ([]frienddomain.UserRelationship, error) {
	var labels []frienddomain.UserRelationship
	if err := r.db.WithContext(ctx).
		Where("friend_id = ? AND friend_id IN (?)", friendID, scope.OwnedFriendIDs(r.db, userID)).
		Order("relationship_type asc").
		Find(&labels).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return labels, nil
}

func (r *UserRelationshipRepository) FindByFriendAndType(ctx context.Context, userID, friendID uuid.UUID, relationshipType string) (*frienddomain.UserRelationship, error) {
	var found frienddomain.UserRelationship
	if err := r.db.WithContext(ctx).
		Where("friend_id = ? AND relationship_type = ? AND friend_id IN (?)",
			friendID, relationshipType, scope.OwnedFriendIDs(r.db, userID)).
		First(&found).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return &found, nil
}

func (r *UserRelationshipRepository) Create(ctx context.Context, userID uuid.UUID, input frienddomain.CreateUserRelationship) (*frienddomain.UserRelationship, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	created := frienddomain.UserRelationship{
		ID:               id,
		FriendID:         input.FriendID,
		RelationshipType: input.RelationshipType,
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

func (r *UserRelationshipRepository) Update(ctx context.Context, userID, id uuid.UUID, input frienddomain.UpdateUserRelationship) (*frienddomain.UserRelationship, error) {
	updates := map[string]interface{}{}
	if input.RelationshipType != nil {
		updates["relationship_type"] = *input.RelationshipType
	}
	if len(updates) == 0 {
		return r.FindByID(ctx, userID, id)
	}

	result := r.db.WithContext(ctx).Model(&frienddomain.UserRelationship{}).
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

func (r *UserRelationshipRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND friend_id IN (?)", id, scope.OwnedFriendIDs(r.db, userID)).
		Delete(&frienddomain.UserRelationship{})
	if result.Error != nil {
		return repoerr.Map(result.Error)
	}
	if result.RowsAffected == 0 {
		return repoerr.ErrNotFound
	}
	return nil
}
