package entity

import "time"

type EmployeeProfile struct {
	EmployeeID    int64      `gorm:"primaryKey;autoIncrement:false" json:"employee_id"`
	Division      *string    `gorm:"type:varchar(100)" json:"division,omitempty"`
	Ward          *string    `gorm:"type:varchar(100)" json:"ward,omitempty"`
	Designation   *string    `gorm:"type:varchar(100)" json:"designation,omitempty"`
	JoinDate      *time.Time `gorm:"type:date" json:"join_date,omitempty"`
	Status        *string    `gorm:"type:varchar(50)" json:"status,omitempty"`
	AadharNumber  *string    `gorm:"type:varchar(12);uniqueIndex" json:"aadhar_number,omitempty"`
	PANNumber     *string    `gorm:"column:pan_number;type:varchar(10);uniqueIndex" json:"pan_number,omitempty"`
	AccountNumber *string    `gorm:"type:varchar(34)" json:"account_number,omitempty"`
	IFSCCode      *string    `gorm:"column:ifsc_code;type:varchar(11)" json:"ifsc_code,omitempty"`

	// Relationships
	User *User `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (EmployeeProfile) TableName() string {
	return "employees"
}

const EmployeeKeyColumn = "employee_id"

var EmployeeColumns = []string{
	"division",
	"ward",
	"designation",
	"join_date",
	"status",
	"aadhar_number",
	"pan_number",
	"account_number",
	"ifsc_code",
}
