package usecase

import (
	"context"

	"health-automation-backend/internal/converter"
	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/domain/entity"
	"health-automation-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type InvestigationUsecase interface {
	Create(ctx context.Context, req *dto.CreateInvestigationRequest) (*dto.InvestigationResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]dto.InvestigationResponse, int64, error)
	GetByID(ctx context.Context, id int64) (*dto.InvestigationResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateInvestigationRequest) (*dto.InvestigationResponse, error)
	Delete(ctx context.Context, id int64) error
}

type investigationUsecase struct {
	log               *logrus.Logger
	investigationRepo repository.InvestigationRepository
}

func NewInvestigationUsecase(log *logrus.Logger, investigationRepo repository.InvestigationRepository) InvestigationUsecase {
	return &investigationUsecase{
		log:               log,
		investigationRepo: investigationRepo,
	}
}

func (u *investigationUsecase) Create(ctx context.Context, req *dto.CreateInvestigationRequest) (*dto.InvestigationResponse, error) {
	investigation := &entity.Investigation{
		Name:        req.Name,
		Description: req.Description,
		DefaultRate: req.DefaultRate,
	}

	if err := u.investigationRepo.Create(ctx, investigation); err != nil {
		u.log.Warnf("Failed to create investigation: %+v", err)
		return nil, err
	}

	return converter.InvestigationToResponse(investigation), nil
}

func (u *investigationUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.InvestigationResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	investigations, total, err := u.investigationRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find investigations: %+v", err)
		return nil, 0, err
	}

	return converter.InvestigationsToResponses(investigations), total, nil
}

func (u *investigationUsecase) GetByID(ctx context.Context, id int64) (*dto.InvestigationResponse, error) {
	investigation, err := u.investigationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find investigation: %+v", err)
		return nil, err
	}
	if investigation == nil {
		return nil, ErrInvestigationNotFound
	}

	return converter.InvestigationToResponse(investigation), nil
}

func (u *investigationUsecase) Update(ctx context.Context, id int64, req *dto.UpdateInvestigationRequest) (*dto.InvestigationResponse, error) {
	investigation, err := u.investigationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find investigation: %+v", err)
		return nil, err
	}
	if investigation == nil {
		return nil, ErrInvestigationNotFound
	}

	investigation.Name = req.Name
	investigation.Description = req.Description
	investigation.DefaultRate = req.DefaultRate

	if err := u.investigationRepo.Update(ctx, investigation); err != nil {
		u.log.Warnf("Failed to update investigation: %+v", err)
		return nil, err
	}

	return converter.InvestigationToResponse(investigation), nil
}

func (u *investigationUsecase) Delete(ctx context.Context, id int64) error {
	investigation, err := u.investigationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find investigation: %+v", err)
		return err
	}
	if investigation == nil {
		return ErrInvestigationNotFound
	}

	return u.investigationRepo.Delete(ctx, id)
}
