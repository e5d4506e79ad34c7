package usecase

import (
	"context"
	"strconv"
	"time"

	"health-automation-backend/internal/converter"
	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/domain/entity"
	"health-automation-backend/internal/domain/repository"
	"health-automation-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PasswordHasher is satisfied by pkg/password.Hasher.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, stored string) bool
}

type UserUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id int64) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	hasher       PasswordHasher
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	tokenRepo    repository.TokenRepository
	auditService service.AuditService
	// Profiles are removed in this order before the user row.
	cascade []ProfileCascader
	now     func() time.Time
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hasher PasswordHasher,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	tokenRepo repository.TokenRepository,
	auditService service.AuditService,
	employees ProfileCascader,
	doctors ProfileCascader,
	patients ProfileCascader,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		hasher:       hasher,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		tokenRepo:    tokenRepo,
		auditService: auditService,
		cascade:      []ProfileCascader{employees, doctors, patients},
		now:          time.Now,
	}
}

func (u *userUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	var dob *time.Time
	if req.DOB != nil {
		parsed, err := time.Parse(dto.DateLayout, *req.DOB)
		if err != nil {
			return nil, ErrInvalidDate
		}
		dob = &parsed
	}

	roleID := entity.RoleIDPatient
	if req.RoleID != nil {
		roleID = *req.RoleID
	}

	// Hash before opening the transaction.
	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	role, err := u.roleRepo.FindByID(ctx, tx, roleID)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	existing, err := u.userRepo.FindByEmail(ctx, tx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if existing == nil {
		existing, err = u.userRepo.FindByPhone(ctx, tx, req.Phone)
		if err != nil {
			u.log.Warnf("Failed to find user by phone: %+v", err)
			return nil, err
		}
	}
	if existing != nil {
		return nil, ErrDuplicateIdentity
	}

	now := u.now().UTC()
	user := &entity.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  hashedPassword,
		Gender:    req.Gender,
		DOB:       dob,
		Address:   req.Address,
		RoleID:    role.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		switch {
		case isDuplicateKeyError(err):
			return nil, ErrDuplicateIdentity
		case isForeignKeyError(err):
			return nil, ErrRoleNotFound
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}
	user.Role = role

	response := converter.UserToResponse(user)
	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionUserRegister, "user", strconv.FormatInt(user.ID, 10), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicateIdentity
		}
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *userUsecase) GetUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// DeleteUser removes the user's profiles and then the user, atomically.
// It returns false when the user does not exist.
func (u *userUsecase) DeleteUser(ctx context.Context, id int64) (bool, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return false, err
	}
	if user == nil {
		return false, nil
	}

	// Written before the user row goes so the actor reference is still valid.
	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionUserDelete, "user", strconv.FormatInt(id, 10), converter.UserToResponse(user)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	for _, profiles := range u.cascade {
		if _, err := profiles.Cascade(ctx, tx, id); err != nil {
			return false, err
		}
	}

	deleted, err := u.userRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return false, err
	}

	if err := u.tokenRepo.RevokeAll(ctx, id); err != nil {
		u.log.Warnf("Failed to revoke tokens of deleted user %d: %+v", id, err)
	}

	return deleted, nil
}
