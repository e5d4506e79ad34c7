package dto

import "health-automation-backend/internal/domain/entity"

// Request DTOs

type EmployeeProfileRequest struct {
	EmployeeID    *int64  `json:"employee_id"`
	Division      *string `json:"division" validate:"omitempty,max=100"`
	Ward          *string `json:"ward" validate:"omitempty,max=100"`
	Designation   *string `json:"designation" validate:"omitempty,max=100"`
	JoinDate      *string `json:"join_date" validate:"omitempty,datetime=2006-01-02"`
	Status        *string `json:"status" validate:"omitempty,max=50"`
	AadharNumber  *string `json:"aadhar_number" validate:"omitempty,len=12,numeric"`
	PANNumber     *string `json:"pan_number" validate:"omitempty,len=10,alphanum"`
	AccountNumber *string `json:"account_number" validate:"omitempty,max=34"`
	IFSCCode      *string `json:"ifsc_code" validate:"omitempty,len=11"`
}

func (r *EmployeeProfileRequest) Fields() (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	setField(fields, entity.EmployeeKeyColumn, r.EmployeeID)
	setField(fields, "division", r.Division)
	setField(fields, "ward", r.Ward)
	setField(fields, "designation", r.Designation)
	if err := setDateField(fields, "join_date", r.JoinDate); err != nil {
		return nil, err
	}
	setField(fields, "status", r.Status)
	setField(fields, "aadhar_number", r.AadharNumber)
	setField(fields, "pan_number", r.PANNumber)
	setField(fields, "account_number", r.AccountNumber)
	setField(fields, "ifsc_code", r.IFSCCode)
	return fields, nil
}

// Response DTOs

type EmployeeProfileResponse struct {
	EmployeeID    int64   `json:"employee_id"`
	Division      *string `json:"division"`
	Ward          *string `json:"ward"`
	Designation   *string `json:"designation"`
	JoinDate      *string `json:"join_date"`
	Status        *string `json:"status"`
	AadharNumber  *string `json:"aadhar_number"`
	PANNumber     *string `json:"pan_number"`
	AccountNumber *string `json:"account_number"`
	IFSCCode      *string `json:"ifsc_code"`
}
