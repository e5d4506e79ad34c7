package usecase

import (
	"context"
	"sync"

	"health-automation-backend/internal/converter"
	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/domain/entity"
	"health-automation-backend/internal/domain/repository"
	"health-automation-backend/pkg/jwt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthUsecase interface {
	// Login authenticates by email and password. A non-empty role restricts
	// the login to accounts holding that role.
	Login(ctx context.Context, req *dto.LoginRequest, role string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID int64, accessTokenID, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

type authUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	hasher     PasswordHasher
	userRepo   repository.UserRepository
	tokenRepo  repository.TokenRepository
	jwtService *jwt.JWTService

	decoyOnce sync.Once
	decoyHash string
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hasher PasswordHasher,
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		db:         db,
		log:        log,
		hasher:     hasher,
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest, role string) (*dto.TokenResponse, error) {
	// Find user by email (read-only, no transaction needed)
	user, err := u.userRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}

	if user == nil {
		// Unknown emails cost one verification, same as a wrong password.
		u.hasher.Verify(req.Password, u.decoy())
		return nil, ErrInvalidCredentials
	}

	if !u.hasher.Verify(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	if role != "" {
		roleID, ok := entity.RoleIDByName(role)
		if !ok || user.RoleID != roleID {
			return nil, ErrRoleForbidden
		}
	}

	tokens, err := u.issueTokens(ctx, user.ID, user.Email, user.RoleID)
	if err != nil {
		return nil, err
	}
	tokens.User = converter.UserToResponse(user)

	return tokens, nil
}

// Logout revokes the current access token and, when supplied and owned by
// the same user, the refresh token.
func (u *authUsecase) Logout(ctx context.Context, userID int64, accessTokenID, refreshToken string) error {
	if err := u.tokenRepo.Revoke(ctx, jwt.AccessToken, userID, accessTokenID); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	if refreshToken == "" {
		return nil
	}

	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken || claims.UserID != userID {
		return nil
	}

	if err := u.tokenRepo.Revoke(ctx, jwt.RefreshToken, userID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete refresh token: %+v", err)
		return err
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	// Validate refresh token
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	// Check if refresh token exists in Redis
	exists, err := u.tokenRepo.Exists(ctx, jwt.RefreshToken, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	// Refresh tokens are single use
	if err := u.tokenRepo.Revoke(ctx, jwt.RefreshToken, claims.UserID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	// Pick up role changes made since the token was issued
	user, err := u.userRepo.FindByID(ctx, u.db, claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	return u.issueTokens(ctx, user.ID, user.Email, user.RoleID)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) issueTokens(ctx context.Context, userID int64, email string, roleID int) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email, roleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email, roleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenRepo.Store(ctx, jwt.AccessToken, userID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.tokenRepo.Store(ctx, jwt.RefreshToken, userID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) decoy() string {
	u.decoyOnce.Do(func() {
		hash, err := u.hasher.Hash("decoy-password")
		if err != nil {
			u.log.Warnf("Failed to prepare decoy hash: %+v", err)
			return
		}
		u.decoyHash = hash
	})
	return u.decoyHash
}
