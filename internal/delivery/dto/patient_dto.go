package dto

import "health-automation-backend/internal/domain/entity"

// Request DTOs

type PatientProfileRequest struct {
	PatientID       *int64   `json:"patient_id"`
	Height          *float64 `json:"height" validate:"omitempty,gt=0"`
	Weight          *float64 `json:"weight" validate:"omitempty,gt=0"`
	BloodGroup      *string  `json:"blood_group" validate:"omitempty,max=10"`
	Allergies       *string  `json:"allergies"`
	ChronicDiseases *string  `json:"chronic_diseases"`
	RiskCategory    *string  `json:"risk_category" validate:"omitempty,max=50"`
	FamilyHistory   *string  `json:"family_history"`
	Lifestyle       *string  `json:"lifestyle"`
}

// Fields includes patient_id when supplied; the upsert engine discards it.
func (r *PatientProfileRequest) Fields() (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	setField(fields, entity.PatientKeyColumn, r.PatientID)
	setField(fields, "height", r.Height)
	setField(fields, "weight", r.Weight)
	setField(fields, "blood_group", r.BloodGroup)
	setField(fields, "allergies", r.Allergies)
	setField(fields, "chronic_diseases", r.ChronicDiseases)
	setField(fields, "risk_category", r.RiskCategory)
	setField(fields, "family_history", r.FamilyHistory)
	setField(fields, "lifestyle", r.Lifestyle)
	return fields, nil
}

// Response DTOs

type PatientProfileResponse struct {
	PatientID       int64    `json:"patient_id"`
	Height          *float64 `json:"height"`
	Weight          *float64 `json:"weight"`
	BloodGroup      *string  `json:"blood_group"`
	Allergies       *string  `json:"allergies"`
	ChronicDiseases *string  `json:"chronic_diseases"`
	RiskCategory    *string  `json:"risk_category"`
	FamilyHistory   *string  `json:"family_history"`
	Lifestyle       *string  `json:"lifestyle"`
}
