package database

import (
	"context"
	"fmt"

	"health-automation-backend/internal/domain/entity"
	"health-automation-backend/internal/domain/repository"

	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&entity.Role{},
		&entity.User{},
		&entity.PatientProfile{},
		&entity.DoctorProfile{},
		&entity.EmployeeProfile{},
		&entity.Appointment{},
		&entity.Investigation{},
		&entity.AuditLog{},
	}
}

// AutoMigrate creates the schema from the entity definitions and seeds the
// default roles. The SQL migrations remain the source of truth in production.
func AutoMigrate(ctx context.Context, db *gorm.DB, roleRepo repository.RoleRepository) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := roleRepo.Seed(ctx, db, entity.DefaultRoles); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	return nil
}
