package repository

import (
	"context"
	"errors"

	"health-automation-backend/internal/domain/entity"
	domainRepo "health-automation-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type investigationRepository struct {
	db *gorm.DB
}

func NewInvestigationRepository(db *gorm.DB) domainRepo.InvestigationRepository {
	return &investigationRepository{db: db}
}

func (r *investigationRepository) Create(ctx context.Context, investigation *entity.Investigation) error {
	return r.db.WithContext(ctx).Create(investigation).Error
}

func (r *investigationRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.Investigation, int64, error) {
	var investigations []entity.Investigation
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Investigation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Order("name ASC, id ASC").Find(&investigations).Error; err != nil {
		return nil, 0, err
	}

	return investigations, total, nil
}

func (r *investigationRepository) FindByID(ctx context.Context, id int64) (*entity.Investigation, error) {
	var investigation entity.Investigation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&investigation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &investigation, nil
}

func (r *investigationRepository) Update(ctx context.Context, investigation *entity.Investigation) error {
	return r.db.WithContext(ctx).Save(investigation).Error
}

func (r *investigationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Investigation{}).Error
}
