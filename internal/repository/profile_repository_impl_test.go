package repository_test

import (
	"context"
	"errors"
	"testing"

	"health-automation-backend/internal/domain/entity"
	"health-automation-backend/internal/repository"
	"health-automation-backend/internal/testutil"

	"gorm.io/gorm"
)

func TestProfileRepositoryCreateAndMerge(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := repository.NewPatientProfileRepository()
	user := testutil.CreateUser(t, db, "Asha", "Rao", entity.RoleIDPatient)

	missing, err := repo.FindByUserID(ctx, db, user.ID)
	if err != nil || missing != nil {
		t.Fatalf("FindByUserID before create = %v, %v; want nil, nil", missing, err)
	}

	if err := repo.Create(ctx, db, user.ID, map[string]interface{}{"blood_group": "O+", "height": 160.5}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Update(ctx, db, user.ID, map[string]interface{}{"weight": 55.0}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	profile, err := repo.FindByUserIDForUpdate(ctx, db, user.ID)
	if err != nil {
		t.Fatalf("FindByUserIDForUpdate: %v", err)
	}
	if profile.PatientID != user.ID {
		t.Errorf("expected patient_id %d, got %d", user.ID, profile.PatientID)
	}
	if profile.BloodGroup == nil || *profile.BloodGroup != "O+" {
		t.Errorf("blood_group was not kept: %v", profile.BloodGroup)
	}
	if profile.Weight == nil || *profile.Weight != 55.0 {
		t.Errorf("weight was not merged: %v", profile.Weight)
	}
}

func TestProfileRepositoryUpdateWithoutFieldsIsNoop(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := repository.NewEmployeeProfileRepository()
	user := testutil.CreateUser(t, db, "Ravi", "Kumar", entity.RoleIDEmployee)

	if err := repo.Create(ctx, db, user.ID, map[string]interface{}{"ward": "B2"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Update(ctx, db, user.ID, map[string]interface{}{}); err != nil {
		t.Fatalf("Update with no fields: %v", err)
	}

	profile, _ := repo.FindByUserID(ctx, db, user.ID)
	if profile == nil || profile.Ward == nil || *profile.Ward != "B2" {
		t.Fatalf("unexpected profile after empty update: %+v", profile)
	}
}

func TestProfileRepositoryUniqueIdentity(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := repository.NewDoctorProfileRepository()
	first := testutil.CreateUser(t, db, "Meera", "Iyer", entity.RoleIDDoctor)
	second := testutil.CreateUser(t, db, "Arjun", "Das", entity.RoleIDDoctor)

	if err := repo.Create(ctx, db, first.ID, map[string]interface{}{"aadhar_number": "123412341234"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := repo.Create(ctx, db, second.ID, map[string]interface{}{"aadhar_number": "123412341234"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey, got %v", err)
	}
}

func TestProfileRepositoryCreateForMissingUser(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := repository.NewPatientProfileRepository()

	err := repo.Create(ctx, db, 999, map[string]interface{}{"lifestyle": "active"})
	if !errors.Is(err, gorm.ErrForeignKeyViolated) {
		t.Fatalf("expected gorm.ErrForeignKeyViolated, got %v", err)
	}
}

func TestProfileRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := repository.NewPatientProfileRepository()
	user := testutil.CreateUser(t, db, "Asha", "Rao", entity.RoleIDPatient)

	if err := repo.Create(ctx, db, user.ID, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := repo.Delete(ctx, db, user.ID)
	if err != nil || !deleted {
		t.Fatalf("first Delete = %v, %v; want true, nil", deleted, err)
	}
	deleted, err = repo.Delete(ctx, db, user.ID)
	if err != nil || deleted {
		t.Fatalf("second Delete = %v, %v; want false, nil", deleted, err)
	}
}
