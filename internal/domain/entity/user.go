package entity

import (
	"strings"
	"time"
)

// User is the identity record every profile kind hangs off.
type User struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  *string    `gorm:"type:varchar(100)" json:"last_name,omitempty"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone     string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	Password  string     `gorm:"type:text;not null" json:"-"`
	Gender    *string    `gorm:"type:varchar(20)" json:"gender,omitempty"`
	DOB       *time.Time `gorm:"column:dob;type:date" json:"dob,omitempty"`
	Address   *string    `gorm:"type:text" json:"address,omitempty"`
	RoleID    int        `gorm:"not null;index" json:"role_id"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`

	// Relationships
	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// FullName joins first and last name, skipping empty parts.
func (u *User) FullName() string {
	var last string
	if u.LastName != nil {
		last = *u.LastName
	}
	return JoinName(u.FirstName, last)
}

func JoinName(parts ...string) string {
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return strings.Join(names, " ")
}
