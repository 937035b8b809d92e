package repository

import (
	"context"

	"github.com/google/uuid"

	"droscher.com/WhiskyShelf/pkg/model"
)

func (r *Repository) GetUserFromEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, name string, email string) (*model.User, error) {
	user := model.User{
		UUID:     uuid.New(),
		Username: name,
		Email:    email,
	}

	if result := r.DB.WithContext(ctx).Create(&user); result.Error != nil {
		return nil, translate(result.Error)
	}

	return &user, nil
}

// ListUserIDs returns every account, for scheduled backups.
func (r *Repository) ListUserIDs(ctx context.Context) ([]uint, error) {
	var ids []uint

	if result := r.DB.WithContext(ctx).Model(&model.User{}).Order("id").Pluck("id", &ids); result.Error != nil {
		return nil, result.Error
	}

	return ids, nil
}
