package entity

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	DoctorID             int64   `gorm:"primaryKey;autoIncrement:false" json:"doctor_id"`
	Qualification        *string `gorm:"type:varchar(255)" json:"qualification,omitempty"`
	Specialization       *string `gorm:"type:varchar(100);index" json:"specialization,omitempty"`
	RegistrationNumber   *string `gorm:"type:varchar(50)" json:"registration_number,omitempty"`
	ExperienceYears      *int    `json:"experience_years,omitempty"`
	ClinicAddress        *string `gorm:"type:text" json:"clinic_address,omitempty"`
	AvailabilitySchedule JSON    `gorm:"type:jsonb" json:"availability_schedule,omitempty"`
	AadharNumber         *string `gorm:"type:varchar(12);uniqueIndex" json:"aadhar_number,omitempty"`
	PANNumber            *string `gorm:"column:pan_number;type:varchar(10);uniqueIndex" json:"pan_number,omitempty"`
	AccountNumber        *string `gorm:"type:varchar(34)" json:"account_number,omitempty"`
	IFSCCode             *string `gorm:"column:ifsc_code;type:varchar(11)" json:"ifsc_code,omitempty"`

	// Relationships
	User         *User         `gorm:"foreignKey:DoctorID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID;references:DoctorID;constraint:OnDelete:SET NULL" json:"-"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

const DoctorKeyColumn = "doctor_id"

var DoctorColumns = []string{
	"qualification",
	"specialization",
	"registration_number",
	"experience_years",
	"clinic_address",
	"availability_schedule",
	"aadhar_number",
	"pan_number",
	"account_number",
	"ifsc_code",
}
