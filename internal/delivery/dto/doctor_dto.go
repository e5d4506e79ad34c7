package dto

import "health-automation-backend/internal/domain/entity"

// Request DTOs

type DoctorProfileRequest struct {
	DoctorID             *int64                  `json:"doctor_id"`
	Qualification        *string                 `json:"qualification" validate:"omitempty,max=255"`
	Specialization       *string                 `json:"specialization" validate:"omitempty,max=100"`
	RegistrationNumber   *string                 `json:"registration_number" validate:"omitempty,max=50"`
	ExperienceYears      *int                    `json:"experience_years" validate:"omitempty,gte=0"`
	ClinicAddress        *string                 `json:"clinic_address"`
	AvailabilitySchedule *map[string]interface{} `json:"availability_schedule"`
	AadharNumber         *string                 `json:"aadhar_number" validate:"omitempty,len=12,numeric"`
	PANNumber            *string                 `json:"pan_number" validate:"omitempty,len=10,alphanum"`
	AccountNumber        *string                 `json:"account_number" validate:"omitempty,max=34"`
	IFSCCode             *string                 `json:"ifsc_code" validate:"omitempty,len=11"`
}

func (r *DoctorProfileRequest) Fields() (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	setField(fields, entity.DoctorKeyColumn, r.DoctorID)
	setField(fields, "qualification", r.Qualification)
	setField(fields, "specialization", r.Specialization)
	setField(fields, "registration_number", r.RegistrationNumber)
	setField(fields, "experience_years", r.ExperienceYears)
	setField(fields, "clinic_address", r.ClinicAddress)
	if r.AvailabilitySchedule != nil {
		fields["availability_schedule"] = entity.JSON(*r.AvailabilitySchedule)
	}
	setField(fields, "aadhar_number", r.AadharNumber)
	setField(fields, "pan_number", r.PANNumber)
	setField(fields, "account_number", r.AccountNumber)
	setField(fields, "ifsc_code", r.IFSCCode)
	return fields, nil
}

// Response DTOs

type DoctorProfileResponse struct {
	DoctorID             int64       `json:"doctor_id"`
	Qualification        *string     `json:"qualification"`
	Specialization       *string     `json:"specialization"`
	RegistrationNumber   *string     `json:"registration_number"`
	ExperienceYears      *int        `json:"experience_years"`
	ClinicAddress        *string     `json:"clinic_address"`
	AvailabilitySchedule entity.JSON `json:"availability_schedule"`
	AadharNumber         *string     `json:"aadhar_number"`
	PANNumber            *string     `json:"pan_number"`
	AccountNumber        *string     `json:"account_number"`
	IFSCCode             *string     `json:"ifsc_code"`
}
