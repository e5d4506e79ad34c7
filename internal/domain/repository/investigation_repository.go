package repository

import (
	"context"

	"health-automation-backend/internal/domain/entity"
)

type InvestigationRepository interface {
	Create(ctx context.Context, investigation *entity.Investigation) error
	FindAll(ctx context.Context, limit, offset int) ([]entity.Investigation, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Investigation, error)
	Update(ctx context.Context, investigation *entity.Investigation) error
	Delete(ctx context.Context, id int64) error
}
