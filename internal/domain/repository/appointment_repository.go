package repository

import (
	"context"
	"iter"
	"time"

	"health-automation-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Appointment, error)
	DetachPatient(ctx context.Context, db *gorm.DB, patientID int64) error
	DetachDoctor(ctx context.Context, db *gorm.DB, doctorID int64) error
	// FindBetween yields appointments in [from, to) ordered by id. Every
	// range over the sequence runs a fresh query.
	FindBetween(ctx context.Context, db *gorm.DB, from, to time.Time) iter.Seq2[entity.AppointmentView, error]
}
