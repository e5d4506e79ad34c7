package repository

import (
	"context"

	"health-automation-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Role, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Role, error)
	// Seed inserts the default roles that are not present yet.
	Seed(ctx context.Context, db *gorm.DB, roles []entity.Role) error
}
