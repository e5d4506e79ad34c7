package usecase

import (
	"context"
	"slices"
	"strconv"

	"health-automation-backend/internal/domain/entity"
	"health-automation-backend/internal/domain/repository"
	"health-automation-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ProfileKind describes one profile table to the generic upsert engine.
type ProfileKind struct {
	Name      string
	KeyColumn string
	// Columns is the set of columns a caller may write. The key column is
	// never writable, even if listed.
	Columns []string
	// Detach clears rows that reference the profile so it can be deleted.
	Detach func(ctx context.Context, tx *gorm.DB, userID int64) error
}

func PatientKind(appointmentRepo repository.AppointmentRepository) ProfileKind {
	return ProfileKind{
		Name:      entity.RolePatient,
		KeyColumn: entity.PatientKeyColumn,
		Columns:   entity.PatientColumns,
		Detach:    appointmentRepo.DetachPatient,
	}
}

func DoctorKind(appointmentRepo repository.AppointmentRepository) ProfileKind {
	return ProfileKind{
		Name:      entity.RoleDoctor,
		KeyColumn: entity.DoctorKeyColumn,
		Columns:   entity.DoctorColumns,
		Detach:    appointmentRepo.DetachDoctor,
	}
}

func EmployeeKind() ProfileKind {
	return ProfileKind{
		Name:      entity.RoleEmployee,
		KeyColumn: entity.EmployeeKeyColumn,
		Columns:   entity.EmployeeColumns,
	}
}

// writable drops the key column and anything outside the allow-list.
func (k ProfileKind) writable(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for column, value := range fields {
		if column == k.KeyColumn || !slices.Contains(k.Columns, column) {
			continue
		}
		out[column] = value
	}
	return out
}

// ProfileCascader removes a profile as part of a larger transaction.
type ProfileCascader interface {
	Cascade(ctx context.Context, tx *gorm.DB, userID int64) (bool, error)
}

type ProfileUsecase[P any] interface {
	ProfileCascader
	Get(ctx context.Context, userID int64) (*P, error)
	Upsert(ctx context.Context, userID int64, fields map[string]interface{}) (*P, error)
	Delete(ctx context.Context, userID int64) (bool, error)
}

type profileUsecase[P any] struct {
	db           *gorm.DB
	log          *logrus.Logger
	kind         ProfileKind
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository[P]
	auditService service.AuditService
}

func NewProfileUsecase[P any](
	db *gorm.DB,
	log *logrus.Logger,
	kind ProfileKind,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository[P],
	auditService service.AuditService,
) ProfileUsecase[P] {
	return &profileUsecase[P]{
		db:           db,
		log:          log,
		kind:         kind,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

// Get returns (nil, nil) when the user has no profile of this kind.
func (u *profileUsecase[P]) Get(ctx context.Context, userID int64) (*P, error) {
	profile, err := u.profileRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find %s profile: %+v", u.kind.Name, err)
		return nil, err
	}
	return profile, nil
}

// Upsert creates the profile keyed by userID or merges the supplied columns
// into the existing one. Columns not supplied are left untouched.
func (u *profileUsecase[P]) Upsert(ctx context.Context, userID int64, fields map[string]interface{}) (*P, error) {
	fields = u.kind.writable(fields)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.profileRepo.FindByUserIDForUpdate(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to lock %s profile: %+v", u.kind.Name, err)
		return nil, err
	}

	if existing != nil {
		err = u.profileRepo.Update(ctx, tx, userID, fields)
	} else {
		user, findErr := u.userRepo.FindByID(ctx, tx, userID)
		if findErr != nil {
			u.log.Warnf("Failed to find user: %+v", findErr)
			return nil, findErr
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		err = u.profileRepo.Create(ctx, tx, userID, fields)
	}
	if err != nil {
		switch {
		case isDuplicateKeyError(err):
			return nil, ErrDuplicateIdentity
		case isForeignKeyError(err):
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to save %s profile: %+v", u.kind.Name, err)
		return nil, err
	}

	profile, err := u.profileRepo.FindByUserID(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to reload %s profile: %+v", u.kind.Name, err)
		return nil, err
	}

	entityID := strconv.FormatInt(userID, 10)
	if existing != nil {
		err = u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionProfileUpsert, u.kind.Name+"_profile", entityID, existing, profile)
	} else {
		err = u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionProfileUpsert, u.kind.Name+"_profile", entityID, profile)
	}
	if err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicateIdentity
		}
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return profile, nil
}

// Delete returns false when there was nothing to delete.
func (u *profileUsecase[P]) Delete(ctx context.Context, userID int64) (bool, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	deleted, err := u.Cascade(ctx, tx, userID)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, nil
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionProfileDelete, u.kind.Name+"_profile", strconv.FormatInt(userID, 10), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return false, err
	}

	return true, nil
}

// Cascade deletes the profile inside tx. A missing profile is not an error.
func (u *profileUsecase[P]) Cascade(ctx context.Context, tx *gorm.DB, userID int64) (bool, error) {
	if u.kind.Detach != nil {
		if err := u.kind.Detach(ctx, tx, userID); err != nil {
			u.log.Warnf("Failed to detach %s profile references: %+v", u.kind.Name, err)
			return false, err
		}
	}

	deleted, err := u.profileRepo.Delete(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to delete %s profile: %+v", u.kind.Name, err)
		return false, err
	}
	return deleted, nil
}
