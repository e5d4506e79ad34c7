package converter

import (
	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/domain/entity"
)

func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorProfileResponse{
		DoctorID:             profile.DoctorID,
		Qualification:        profile.Qualification,
		Specialization:       profile.Specialization,
		RegistrationNumber:   profile.RegistrationNumber,
		ExperienceYears:      profile.ExperienceYears,
		ClinicAddress:        profile.ClinicAddress,
		AvailabilitySchedule: profile.AvailabilitySchedule,
		AadharNumber:         profile.AadharNumber,
		PANNumber:            profile.PANNumber,
		AccountNumber:        profile.AccountNumber,
		IFSCCode:             profile.IFSCCode,
	}
}
