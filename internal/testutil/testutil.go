// Package testutil builds real gorm and Redis backends for package tests.
package testutil

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"health-automation-backend/internal/domain/entity"
	domainRepo "health-automation-backend/internal/domain/repository"
	"health-automation-backend/internal/infrastructure/cache"
	"health-automation-backend/internal/infrastructure/database"
	"health-automation-backend/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Logger returns a logger that discards output.
func Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// DB opens a private in-memory SQLite database with foreign keys enforced,
// migrates the schema and seeds the default roles.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	db, err := gorm.Open(sqlite.Open(dsn), database.NewGormConfig("test", Logger()))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// One connection keeps the in-memory database alive and serializes access.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.AutoMigrate(context.Background(), db, repository.NewRoleRepository()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// TokenStore returns a token repository backed by miniredis.
func TokenStore(t *testing.T) (domainRepo.TokenRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewTokenStore(client), mr
}

// CreateUser inserts a user with the given names and role. The password
// column holds a placeholder, not a usable hash.
func CreateUser(t *testing.T, db *gorm.DB, first, last string, roleID int) *entity.User {
	t.Helper()

	user := &entity.User{
		FirstName: first,
		Email:     strings.ToLower(first+"."+last) + "@example.com",
		Phone:     fmt.Sprintf("+91-%s-%s", first, last),
		Password:  "not-a-hash",
		RoleID:    roleID,
	}
	if last != "" {
		user.LastName = &last
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", first, err)
	}
	return user
}

func Ptr[T any](v T) *T {
	return &v
}
