package usecase

import (
	"context"
	"testing"

	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/domain/entity"
	"health-automation-backend/internal/testutil"
	"health-automation-backend/pkg/jwt"
)

const testPassword = "s3cret-pass"

func registerDoctor(t *testing.T, env *testEnv) *dto.UserResponse {
	t.Helper()
	user, err := env.users.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Meera",
		Email:     "meera@example.com",
		Phone:     "+91-22",
		Password:  testPassword,
		RoleID:    testutil.Ptr(entity.RoleIDDoctor),
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return user
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := registerDoctor(t, env)

	tokens, err := env.auth.Login(ctx, &dto.LoginRequest{Email: "meera@example.com", Password: testPassword}, "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tokens.User == nil || tokens.User.ID != user.ID {
		t.Fatalf("unexpected user in token response: %+v", tokens.User)
	}

	claims, err := env.jwt.ValidateToken(tokens.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != user.ID || claims.RoleID != entity.RoleIDDoctor {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if ok, _ := env.tokens.Exists(ctx, jwt.AccessToken, user.ID, claims.TokenID); !ok {
		t.Error("access token not recorded")
	}
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerDoctor(t, env)

	garbage := testutil.CreateUser(t, env.db, "Old", "Import", entity.RoleIDPatient)
	if err := env.db.Model(garbage).Update("password", "$2a$10$notreallyabcryptstring").Error; err != nil {
		t.Fatalf("update password: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "meera@example.com", "nope"},
		{"unknown email", "ghost@example.com", testPassword},
		{"foreign hash", garbage.Email, testPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.Login(ctx, &dto.LoginRequest{Email: tt.email, Password: tt.password}, "")
			if err != ErrInvalidCredentials {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestLoginWithRole(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerDoctor(t, env)
	req := &dto.LoginRequest{Email: "meera@example.com", Password: testPassword}

	if _, err := env.auth.Login(ctx, req, entity.RoleDoctor); err != nil {
		t.Fatalf("doctor login: %v", err)
	}
	if _, err := env.auth.Login(ctx, req, entity.RolePatient); err != ErrRoleForbidden {
		t.Fatalf("expected ErrRoleForbidden, got %v", err)
	}

	// A wrong password never reveals the role check.
	req.Password = "nope"
	if _, err := env.auth.Login(ctx, req, entity.RolePatient); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshTokenIsSingleUse(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerDoctor(t, env)

	tokens, err := env.auth.Login(ctx, &dto.LoginRequest{Email: "meera@example.com", Password: testPassword}, "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := env.auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if refreshed.AccessToken == tokens.AccessToken {
		t.Error("expected a new access token")
	}

	if _, err := env.auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken}); err != ErrTokenRevoked {
		t.Fatalf("expected ErrTokenRevoked on reuse, got %v", err)
	}

	if _, err := env.auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.AccessToken}); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for an access token, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := registerDoctor(t, env)

	tokens, err := env.auth.Login(ctx, &dto.LoginRequest{Email: "meera@example.com", Password: testPassword}, "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	access, _ := env.jwt.ValidateToken(tokens.AccessToken)
	refresh, _ := env.jwt.ValidateToken(tokens.RefreshToken)

	if err := env.auth.Logout(ctx, user.ID, access.TokenID, tokens.RefreshToken); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if ok, _ := env.tokens.Exists(ctx, jwt.AccessToken, user.ID, access.TokenID); ok {
		t.Error("access token still active")
	}
	if ok, _ := env.tokens.Exists(ctx, jwt.RefreshToken, user.ID, refresh.TokenID); ok {
		t.Error("refresh token still active")
	}
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := registerDoctor(t, env)

	me, err := env.auth.GetCurrentUser(ctx, user.ID)
	if err != nil || me.Email != "meera@example.com" || me.Role != entity.RoleDoctor {
		t.Fatalf("GetCurrentUser = %+v, %v", me, err)
	}
	if _, err := env.auth.GetCurrentUser(ctx, user.ID+10); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
