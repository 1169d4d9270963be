package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wingman/internal/models/db_models"
	"wingman/pkg/utils"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	Insert(ctx context.Context, user *db_models.User) error
	Update(ctx context.Context, user *db_models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	if r.db == nil {
		return nil, utils.ErrStoreUnavailable
	}

	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	if r.db == nil {
		return utils.ErrStoreUnavailable
	}
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *db_models.User) error {
	if r.db == nil {
		return utils.ErrStoreUnavailable
	}
	return r.db.WithContext(ctx).Save(user).Error
}
