package user

import (
	"context"

	userdomain "friendkb-go/internal/domain/user"
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

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(userdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*userdomain.User, error) {
	var found userdomain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&found).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return &found, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	var found userdomain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&found).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return &found, nil
}

func (r *PostgresRepository) Create(ctx context.Context, input userdomain.CreateUser) (*userdomain.User, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	created := userdomain.User{
		ID:           id,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, repoerr.Map(err)
	}
	return &created, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id uuid.UUID, input userdomain.UpdateUser) (*userdomain.User, error) {
	updates := map[string]interface{}{}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.PasswordHash != nil {
		updates["password_hash"] = *input.PasswordHash
	}
	if len(updates) == 0 {
		return r.FindByID(ctx, id)
	}

	result := r.db.WithContext(ctx).Model(&userdomain.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, repoerr.Map(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, repoerr.ErrNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&userdomain.User{})
	if result.Error != nil {
		return repoerr.Map(result.Error)
	}
	if result.RowsAffected == 0 {
		return repoerr.ErrNotFound
	}
	return nil
}
