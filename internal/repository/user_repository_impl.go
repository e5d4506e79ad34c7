package repository

import (
	"context"
	"errors"

	"health-automation-backend/internal/domain/entity"
	domainRepo "health-automation-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	return db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.User, error) {
	return r.findOne(db.WithContext(ctx).Where("id = ?", id))
}

func (r *userRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	return r.findOne(db.WithContext(ctx).Where("email = ?", email))
}

func (r *userRepository) FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.User, error) {
	return r.findOne(db.WithContext(ctx).Where("phone = ?", phone))
}

func (r *userRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.User{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *userRepository) findOne(query *gorm.DB) (*entity.User, error) {
	var user entity.User
	err := query.Preload("Role").First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
