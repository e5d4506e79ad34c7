package converter

import (
	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/domain/entity"
)

func EmployeeProfileToResponse(profile *entity.EmployeeProfile) *dto.EmployeeProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.EmployeeProfileResponse{
		EmployeeID:    profile.EmployeeID,
		Division:      profile.Division,
		Ward:          profile.Ward,
		Designation:   profile.Designation,
		JoinDate:      formatDate(profile.JoinDate),
		Status:        profile.Status,
		AadharNumber:  profile.AadharNumber,
		PANNumber:     profile.PANNumber,
		AccountNumber: profile.AccountNumber,
		IFSCCode:      profile.IFSCCode,
	}
}
