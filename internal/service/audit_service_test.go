package service

import (
	"context"
	"errors"
	"testing"

	"health-automation-backend/internal/domain/entity"
	domainRepo "health-automation-backend/internal/domain/repository"
	"health-automation-backend/internal/repository"
	"health-automation-backend/internal/testutil"

	"gorm.io/gorm"
)

// halfWrittenAuditRepo inserts the row and then reports a failure, leaving
// partial work in the transaction.
type halfWrittenAuditRepo struct {
	domainRepo.AuditLogRepository
}

func (r halfWrittenAuditRepo) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	if err := r.AuditLogRepository.Create(ctx, db, log); err != nil {
		return err
	}
	return errors.New("audit sink unavailable")
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestAuditFailureKeepsTransaction(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	audit := NewAuditService(testutil.Logger(), halfWrittenAuditRepo{repository.NewAuditLogRepository()})

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := testutil.CreateUser(t, tx, "Kiran", "Das", entity.RoleIDPatient)
	if err := audit.LogCreate(ctx, tx, nil, entity.AuditActionUserRegister, "user", "1", user); err == nil {
		t.Fatal("expected the audit failure to be reported")
	}

	// The transaction must still accept writes after the failed audit.
	testutil.CreateUser(t, tx, "Nila", "Das", entity.RoleIDPatient)

	if err := tx.Commit().Error; err != nil {
		t.Fatalf("commit: %v", err)
	}

	if n := countRows(t, db, &entity.User{}); n != 2 {
		t.Errorf("expected 2 users after commit, got %d", n)
	}
	if n := countRows(t, db, &entity.AuditLog{}); n != 0 {
		t.Errorf("expected the half-written audit row to be rolled back, got %d", n)
	}
}

func TestAuditWritesInsideTransaction(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	audit := NewAuditService(testutil.Logger(), repository.NewAuditLogRepository())

	tx := db.WithContext(ctx).Begin()
	user := testutil.CreateUser(t, tx, "Kiran", "Das", entity.RoleIDPatient)
	if err := audit.LogDelete(ctx, tx, &user.ID, entity.AuditActionUserDelete, "user", "1", nil); err != nil {
		t.Fatalf("LogDelete: %v", err)
	}
	tx.Rollback()

	if n := countRows(t, db, &entity.AuditLog{}); n != 0 {
		t.Errorf("expected the audit row to roll back with its transaction, got %d", n)
	}
}
