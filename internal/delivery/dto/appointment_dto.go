package dto

import "time"

// Request DTOs

// CreateAppointmentRequest takes user ids; date_time is RFC 3339, or a local
// "2006-01-02T15:04:05" read in the server timezone.
type CreateAppointmentRequest struct {
	PatientID int64   `json:"patient_id" validate:"required,gt=0"`
	DoctorID  int64   `json:"doctor_id" validate:"required,gt=0"`
	DateTime  string  `json:"date_time" validate:"required"`
	Type      *string `json:"type" validate:"omitempty,max=50"`
	Status    *string `json:"status" validate:"omitempty,max=50"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        int64     `json:"id"`
	PatientID *int64    `json:"patient_id"`
	DoctorID  *int64    `json:"doctor_id"`
	DateTime  time.Time `json:"date_time"`
	Type      *string   `json:"type"`
	Status    *string   `json:"status"`
}

type TodayAppointmentResponse struct {
	AppointmentID   int64   `json:"appointment_id"`
	DoctorID        *int64  `json:"doctor_id"`
	DoctorName      *string `json:"doctor_name"`
	PatientID       *int64  `json:"patient_id"`
	PatientName     *string `json:"patient_name"`
	AppointmentDate string  `json:"appointment_date"`
	AppointmentTime string  `json:"appointment_time"`
	Type            *string `json:"type"`
	Status          *string `json:"status"`
}
