package converter

import (
	"time"

	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// The password hash is never copied.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		Email:     user.Email,
		Phone:     user.Phone,
		Gender:    user.Gender,
		DOB:       formatDate(user.DOB),
		Address:   user.Address,
		RoleID:    user.RoleID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.Role != nil {
		response.Role = user.Role.RoleName
	}

	return response
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dto.DateLayout)
	return &s
}
