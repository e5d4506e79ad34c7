package entity

// PatientProfile holds clinical attributes keyed by the owning user's id.
type PatientProfile struct {
	PatientID       int64    `gorm:"primaryKey;autoIncrement:false" json:"patient_id"`
	Height          *float64 `json:"height,omitempty"`
	Weight          *float64 `json:"weight,omitempty"`
	BloodGroup      *string  `gorm:"type:varchar(10)" json:"blood_group,omitempty"`
	Allergies       *string  `gorm:"type:text" json:"allergies,omitempty"`
	ChronicDiseases *string  `gorm:"type:text" json:"chronic_diseases,omitempty"`
	RiskCategory    *string  `gorm:"type:varchar(50)" json:"risk_category,omitempty"`
	FamilyHistory   *string  `gorm:"type:text" json:"family_history,omitempty"`
	Lifestyle       *string  `gorm:"type:text" json:"lifestyle,omitempty"`

	// Relationships
	User         *User         `gorm:"foreignKey:PatientID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:PatientID;references:PatientID;constraint:OnDelete:SET NULL" json:"-"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

const PatientKeyColumn = "patient_id"

// PatientColumns lists the columns a caller may write.
var PatientColumns = []string{
	"height",
	"weight",
	"blood_group",
	"allergies",
	"chronic_diseases",
	"risk_category",
	"family_history",
	"lifestyle",
}
