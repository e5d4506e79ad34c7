package dto

import "time"

// Request DTOs

type RegisterRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     string  `json:"phone" validate:"required,min=3,max=20"`
	Password  string  `json:"password" validate:"required"`
	RoleID    *int    `json:"role_id" validate:"omitempty,gt=0"`
	Gender    *string `json:"gender" validate:"omitempty,max=20"`
	DOB       *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Address   *string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *UserResponse `json:"user,omitempty"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  *string   `json:"last_name,omitempty"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Gender    *string   `json:"gender,omitempty"`
	DOB       *string   `json:"dob,omitempty"`
	Address   *string   `json:"address,omitempty"`
	RoleID    int       `json:"role_id"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
