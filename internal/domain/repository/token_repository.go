package repository

import (
	"context"
	"time"

	"health-automation-backend/pkg/jwt"
)

// TokenRepository records issued tokens so they can be revoked before expiry.
type TokenRepository interface {
	Store(ctx context.Context, tokenType jwt.TokenType, userID int64, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, tokenType jwt.TokenType, userID int64, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenType jwt.TokenType, userID int64, tokenID string) error
	RevokeAll(ctx context.Context, userID int64) error
}
