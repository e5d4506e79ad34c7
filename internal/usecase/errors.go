package usecase

import (
	"context"
	"errors"

	"health-automation-backend/internal/delivery/http/middleware"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrInvestigationNotFound = errors.New("investigation not found")
	ErrAuditLogNotFound      = errors.New("audit log not found")

	ErrDuplicateIdentity  = errors.New("email, phone or identity number already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrReferenceNotFound  = errors.New("referenced patient or doctor not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrRoleForbidden      = errors.New("account is not allowed to sign in with this role")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrInvalidDateTime    = errors.New("invalid date_time, use RFC 3339 or YYYY-MM-DDTHH:MM:SS")
	ErrInvalidDate        = errors.New("invalid date format, use YYYY-MM-DD")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// isDuplicateKeyError reports a unique constraint violation, either already
// translated by gorm or as a raw PostgreSQL error.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// isForeignKeyError reports a foreign key violation.
func isForeignKeyError(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// actorFromContext returns the authenticated user, if any, for audit rows.
func actorFromContext(ctx context.Context) *int64 {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}
