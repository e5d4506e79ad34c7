package jwt

import (
	"testing"
	"time"

	"health-automation-backend/config"
)

func newService(secret string, access time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{Secret: secret, AccessExpiry: access, RefreshExpiry: time.Hour})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService("secret", time.Minute)

	token, tokenID, err := svc.GenerateAccessToken(42, "a@x.com", 3)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "a@x.com" || claims.RoleID != 3 {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("expected access token, got %q", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token id mismatch: %q vs %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := newService("secret", time.Minute)

	token, _, err := svc.GenerateRefreshToken(1, "b@x.com", 2)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("expected refresh token, got %q", claims.TokenType)
	}
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, _, _ := newService("one", time.Minute).GenerateAccessToken(1, "a@x.com", 3)

	if _, err := newService("two", time.Minute).ValidateToken(token); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := newService("secret", -time.Minute)
	token, _, _ := svc.GenerateAccessToken(1, "a@x.com", 3)

	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expected expiry error")
	}
}
