package repository

import (
	"context"
	"errors"

	"health-automation-backend/internal/domain/entity"
	domainRepo "health-automation-backend/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type profileRepository[P any] struct {
	keyColumn string
}

// NewProfileRepository builds a repository for a profile table whose primary
// key column is keyColumn.
func NewProfileRepository[P any](keyColumn string) domainRepo.ProfileRepository[P] {
	return &profileRepository[P]{keyColumn: keyColumn}
}

func NewPatientProfileRepository() domainRepo.ProfileRepository[entity.PatientProfile] {
	return NewProfileRepository[entity.PatientProfile](entity.PatientKeyColumn)
}

func NewDoctorProfileRepository() domainRepo.ProfileRepository[entity.DoctorProfile] {
	return NewProfileRepository[entity.DoctorProfile](entity.DoctorKeyColumn)
}

func NewEmployeeProfileRepository() domainRepo.ProfileRepository[entity.EmployeeProfile] {
	return NewProfileRepository[entity.EmployeeProfile](entity.EmployeeKeyColumn)
}

func (r *profileRepository[P]) FindByUserID(ctx context.Context, db *gorm.DB, userID int64) (*P, error) {
	return r.find(db.WithContext(ctx), userID)
}

func (r *profileRepository[P]) FindByUserIDForUpdate(ctx context.Context, db *gorm.DB, userID int64) (*P, error) {
	return r.find(db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID)
}

func (r *profileRepository[P]) Create(ctx context.Context, db *gorm.DB, userID int64, fields map[string]interface{}) error {
	row := make(map[string]interface{}, len(fields)+1)
	for column, value := range fields {
		row[column] = value
	}
	row[r.keyColumn] = userID

	return db.WithContext(ctx).Model(new(P)).Create(row).Error
}

func (r *profileRepository[P]) Update(ctx context.Context, db *gorm.DB, userID int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return db.WithContext(ctx).Model(new(P)).Where(r.keyColumn+" = ?", userID).Updates(fields).Error
}

func (r *profileRepository[P]) Delete(ctx context.Context, db *gorm.DB, userID int64) (bool, error) {
	result := db.WithContext(ctx).Where(r.keyColumn+" = ?", userID).Delete(new(P))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *profileRepository[P]) find(db *gorm.DB, userID int64) (*P, error) {
	var profile P
	err := db.Where(r.keyColumn+" = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
