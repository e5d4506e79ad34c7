package middleware

import (
	"context"
	"net/http"
	"strings"

	"health-automation-backend/internal/domain/repository"
	"health-automation-backend/pkg/jwt"
	"health-automation-backend/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	RoleIDKey    contextKey = "role_id"
	TokenIDKey   contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokenRepo  repository.TokenRepository
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokenRepo repository.TokenRepository, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenRepo:  tokenRepo,
		log:        log,
	}
}

// Authenticate rejects requests without a valid, unrevoked access token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}
		m.serveWithClaims(w, r, next)
	})
}

// Identify attaches the caller's identity when a token is sent and lets
// anonymous requests through untouched. A bad token is still rejected.
func (m *AuthMiddleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}
		m.serveWithClaims(w, r, next)
	})
}

func (m *AuthMiddleware) serveWithClaims(w http.ResponseWriter, r *http.Request, next http.Handler) {
	// Extract token from "Bearer <token>"
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.Unauthorized(w, "Invalid authorization header format")
		return
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}

	if claims.TokenType != jwt.AccessToken {
		response.Unauthorized(w, "Invalid token type")
		return
	}

	// Check if token exists in Redis (not revoked)
	exists, err := m.tokenRepo.Exists(r.Context(), jwt.AccessToken, claims.UserID, claims.TokenID)
	if err != nil {
		m.log.Warnf("Failed to check access token: %+v", err)
		response.InternalServerError(w, "Failed to validate token")
		return
	}
	if !exists {
		response.Unauthorized(w, "Token has been revoked")
		return
	}

	ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
	ctx = context.WithValue(ctx, RoleIDKey, claims.RoleID)
	ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

	next.ServeHTTP(w, r.WithContext(ctx))
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

// GetUserEmailFromContext extracts user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// GetRoleIDFromContext extracts role ID from context
func GetRoleIDFromContext(ctx context.Context) (int, bool) {
	roleID, ok := ctx.Value(RoleIDKey).(int)
	return roleID, ok
}
