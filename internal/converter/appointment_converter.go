package converter

import (
	"time"

	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:        appointment.ID,
		PatientID: appointment.PatientID,
		DoctorID:  appointment.DoctorID,
		DateTime:  appointment.DateTime,
		Type:      appointment.Type,
		Status:    appointment.Status,
	}
}

// AppointmentViewToResponse renders the date and time in loc.
func AppointmentViewToResponse(view entity.AppointmentView, loc *time.Location) dto.TodayAppointmentResponse {
	local := view.DateTime.In(loc)

	return dto.TodayAppointmentResponse{
		AppointmentID:   view.AppointmentID,
		DoctorID:        view.DoctorID,
		DoctorName:      view.DoctorName,
		PatientID:       view.PatientID,
		PatientName:     view.PatientName,
		AppointmentDate: local.Format(dto.DateLayout),
		AppointmentTime: local.Format(time.TimeOnly),
		Type:            view.Type,
		Status:          view.Status,
	}
}
