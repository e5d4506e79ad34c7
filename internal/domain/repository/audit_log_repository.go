package repository

import (
	"context"

	"health-automation-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error
	// FindAll pages audit rows newest first. An empty action matches all rows.
	FindAll(ctx context.Context, db *gorm.DB, action string, limit, offset int) ([]entity.AuditLog, int64, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error)
}
