package converter

import (
	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/domain/entity"
)

func InvestigationToResponse(investigation *entity.Investigation) *dto.InvestigationResponse {
	if investigation == nil {
		return nil
	}

	return &dto.InvestigationResponse{
		ID:          investigation.ID,
		Name:        investigation.Name,
		Description: investigation.Description,
		DefaultRate: investigation.DefaultRate,
		CreatedAt:   investigation.CreatedAt,
		UpdatedAt:   investigation.UpdatedAt,
	}
}

func InvestigationsToResponses(investigations []entity.Investigation) []dto.InvestigationResponse {
	responses := make([]dto.InvestigationResponse, len(investigations))
	for i := range investigations {
		responses[i] = *InvestigationToResponse(&investigations[i])
	}
	return responses
}
