package converter

import (
	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/domain/entity"
)

func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientProfileResponse{
		PatientID:       profile.PatientID,
		Height:          profile.Height,
		Weight:          profile.Weight,
		BloodGroup:      profile.BloodGroup,
		Allergies:       profile.Allergies,
		ChronicDiseases: profile.ChronicDiseases,
		RiskCategory:    profile.RiskCategory,
		FamilyHistory:   profile.FamilyHistory,
		Lifestyle:       profile.Lifestyle,
	}
}
