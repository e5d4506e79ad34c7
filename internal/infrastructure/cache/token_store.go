package cache

import (
	"context"
	"fmt"
	"time"

	domainRepo "health-automation-backend/internal/domain/repository"
	"health-automation-backend/pkg/jwt"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

type tokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) domainRepo.TokenRepository {
	return &tokenStore{client: client}
}

func tokenKey(tokenType jwt.TokenType, userID int64, tokenID string) string {
	return fmt.Sprintf("%s_token:%d:%s", tokenType, userID, tokenID)
}

func (s *tokenStore) Store(ctx context.Context, tokenType jwt.TokenType, userID int64, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(tokenType, userID, tokenID), "valid", ttl).Err()
}

func (s *tokenStore) Exists(ctx context.Context, tokenType jwt.TokenType, userID int64, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(tokenType, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *tokenStore) Revoke(ctx context.Context, tokenType jwt.TokenType, userID int64, tokenID string) error {
	return s.client.Del(ctx, tokenKey(tokenType, userID, tokenID)).Err()
}

// RevokeAll drops every access and refresh token issued to the user.
// Keys are found with SCAN, never KEYS.
func (s *tokenStore) RevokeAll(ctx context.Context, userID int64) error {
	for _, tokenType := range []jwt.TokenType{jwt.AccessToken, jwt.RefreshToken} {
		pattern := tokenKey(tokenType, userID, "*")
		iter := s.client.Scan(ctx, 0, pattern, scanBatch).Iterator()

		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("scan %s: %w", pattern, err)
		}
		if len(keys) == 0 {
			continue
		}
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("delete %s tokens: %w", tokenType, err)
		}
	}
	return nil
}
