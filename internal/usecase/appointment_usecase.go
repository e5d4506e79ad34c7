package usecase

import (
	"context"
	"iter"
	"strconv"
	"time"

	"health-automation-backend/internal/converter"
	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/domain/entity"
	"health-automation-backend/internal/domain/repository"
	"health-automation-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Layouts accepted for date_time values without a zone offset.
var localDateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Get(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	// Today yields the appointments of the current calendar day in the
	// configured timezone, ordered by appointment id. Each range re-queries.
	Today(ctx context.Context) iter.Seq2[dto.TodayAppointmentResponse, error]
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	location        *time.Location
	userRepo        repository.UserRepository
	patientRepo     repository.ProfileRepository[entity.PatientProfile]
	doctorRepo      repository.ProfileRepository[entity.DoctorProfile]
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	now             func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	location *time.Location,
	userRepo repository.UserRepository,
	patientRepo repository.ProfileRepository[entity.PatientProfile],
	doctorRepo repository.ProfileRepository[entity.DoctorProfile],
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	if location == nil {
		location = time.UTC
	}
	return &appointmentUsecase{
		db:              db,
		log:             log,
		location:        location,
		userRepo:        userRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		now:             time.Now,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	dateTime, err := u.parseDateTime(req.DateTime)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkReferences(ctx, tx, req.PatientID, req.DoctorID); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID: &req.PatientID,
		DoctorID:  &req.DoctorID,
		DateTime:  dateTime.UTC(),
		Type:      req.Type,
		Status:    req.Status,
	}

	if err := u.appointmentRepo.Create(ctx, tx, appointment); err != nil {
		if isForeignKeyError(err) {
			return nil, ErrReferenceNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	stored, err := u.appointmentRepo.FindByID(ctx, tx, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to reload appointment: %+v", err)
		return nil, err
	}

	response := converter.AppointmentToResponse(stored)
	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionAppointmentCreate, "appointment", strconv.FormatInt(stored.ID, 10), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

// checkReferences requires both users and their matching profiles.
func (u *appointmentUsecase) checkReferences(ctx context.Context, tx *gorm.DB, patientID, doctorID int64) error {
	for _, id := range []int64{patientID, doctorID} {
		user, err := u.userRepo.FindByID(ctx, tx, id)
		if err != nil {
			u.log.Warnf("Failed to find user by ID: %+v", err)
			return err
		}
		if user == nil {
			return ErrReferenceNotFound
		}
	}

	patient, err := u.patientRepo.FindByUserID(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return err
	}
	doctor, err := u.doctorRepo.FindByUserID(ctx, tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return err
	}
	if patient == nil || doctor == nil {
		return ErrReferenceNotFound
	}

	return nil
}

func (u *appointmentUsecase) Get(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Today(ctx context.Context) iter.Seq2[dto.TodayAppointmentResponse, error] {
	from, to := dayBounds(u.now(), u.location)

	return func(yield func(dto.TodayAppointmentResponse, error) bool) {
		for view, err := range u.appointmentRepo.FindBetween(ctx, u.db, from, to) {
			if err != nil {
				u.log.Warnf("Failed to read today's appointments: %+v", err)
				yield(dto.TodayAppointmentResponse{}, err)
				return
			}
			if !yield(converter.AppointmentViewToResponse(view, u.location), nil) {
				return
			}
		}
	}
}

// dayBounds returns [local midnight, next local midnight) of now in loc, in UTC.
func dayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start.UTC(), end.UTC()
}

func (u *appointmentUsecase) parseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, u.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateTime
}
