package repository

import (
	"context"
	"errors"
	"iter"
	"time"

	"health-automation-backend/internal/domain/entity"
	domainRepo "health-automation-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) DetachPatient(ctx context.Context, db *gorm.DB, patientID int64) error {
	return db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("patient_id = ?", patientID).
		Update("patient_id", nil).Error
}

func (r *appointmentRepository) DetachDoctor(ctx context.Context, db *gorm.DB, doctorID int64) error {
	return db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("doctor_id = ?", doctorID).
		Update("doctor_id", nil).Error
}

// appointmentRow is the flat shape of the daily schedule join.
type appointmentRow struct {
	ID               int64
	PatientID        *int64
	DoctorID         *int64
	DateTime         time.Time
	Type             *string
	Status           *string
	PatientUserID    *int64
	PatientFirstName *string
	PatientLastName  *string
	DoctorUserID     *int64
	DoctorFirstName  *string
	DoctorLastName   *string
}

func (row *appointmentRow) toView() entity.AppointmentView {
	return entity.AppointmentView{
		AppointmentID: row.ID,
		DoctorID:      row.DoctorID,
		DoctorName:    displayName(row.DoctorUserID, row.DoctorFirstName, row.DoctorLastName),
		PatientID:     row.PatientID,
		PatientName:   displayName(row.PatientUserID, row.PatientFirstName, row.PatientLastName),
		DateTime:      row.DateTime,
		Type:          row.Type,
		Status:        row.Status,
	}
}

func displayName(userID *int64, first, last *string) *string {
	if userID == nil {
		return nil
	}
	var f, l string
	if first != nil {
		f = *first
	}
	if last != nil {
		l = *last
	}
	name := entity.JoinName(f, l)
	return &name
}

func (r *appointmentRepository) FindBetween(ctx context.Context, db *gorm.DB, from, to time.Time) iter.Seq2[entity.AppointmentView, error] {
	return func(yield func(entity.AppointmentView, error) bool) {
		rows, err := db.WithContext(ctx).
			Table("appointments AS a").
			Select(`a.id, a.patient_id, a.doctor_id, a.date_time, a.type, a.status,
				pu.id AS patient_user_id, pu.first_name AS patient_first_name, pu.last_name AS patient_last_name,
				du.id AS doctor_user_id, du.first_name AS doctor_first_name, du.last_name AS doctor_last_name`).
			Joins("LEFT JOIN patient_profiles pp ON pp.patient_id = a.patient_id").
			Joins("LEFT JOIN users pu ON pu.id = pp.patient_id").
			Joins("LEFT JOIN doctor_profiles dp ON dp.doctor_id = a.doctor_id").
			Joins("LEFT JOIN users du ON du.id = dp.doctor_id").
			Where("a.date_time >= ? AND a.date_time < ?", from, to).
			Order("a.id ASC").
			Rows()
		if err != nil {
			yield(entity.AppointmentView{}, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var row appointmentRow
			if err := db.ScanRows(rows, &row); err != nil {
				yield(entity.AppointmentView{}, err)
				return
			}
			if !yield(row.toView(), nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(entity.AppointmentView{}, err)
		}
	}
}
