package repository

import (
	"context"

	"gorm.io/gorm"
)

// ProfileRepository is shared by every profile kind. Fields are keyed by
// column name; callers are responsible for filtering them.
type ProfileRepository[P any] interface {
	FindByUserID(ctx context.Context, db *gorm.DB, userID int64) (*P, error)
	FindByUserIDForUpdate(ctx context.Context, db *gorm.DB, userID int64) (*P, error)
	Create(ctx context.Context, db *gorm.DB, userID int64, fields map[string]interface{}) error
	Update(ctx context.Context, db *gorm.DB, userID int64, fields map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, userID int64) (bool, error)
}
