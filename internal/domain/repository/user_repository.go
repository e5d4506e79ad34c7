package repository

import (
	"context"

	"health-automation-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// UserRepository returns (nil, nil) from its finders when no row matches.
type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error)
	FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.User, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) (bool, error)
}
