package entity

import "time"

// Appointment references profiles by their keys, not by raw user ids.
// Both references become NULL when the profile they point at is deleted.
// The foreign keys are declared on PatientProfile and DoctorProfile.
type Appointment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID *int64    `gorm:"index" json:"patient_id"`
	DoctorID  *int64    `gorm:"index" json:"doctor_id"`
	DateTime  time.Time `gorm:"not null;index" json:"date_time"`
	Type      *string   `gorm:"type:varchar(50)" json:"type,omitempty"`
	Status    *string   `gorm:"type:varchar(50)" json:"status,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentView is one row of the denormalized daily schedule.
// Names are nil when the owning user record is missing.
type AppointmentView struct {
	AppointmentID int64
	DoctorID      *int64
	DoctorName    *string
	PatientID     *int64
	PatientName   *string
	DateTime      time.Time
	Type          *string
	Status        *string
}
