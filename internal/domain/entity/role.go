package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin    = 1
	RoleIDDoctor   = 2
	RoleIDPatient  = 3
	RoleIDEmployee = 4
)

// RoleNames constants
const (
	RoleAdmin    = "admin"
	RoleDoctor   = "doctor"
	RolePatient  = "patient"
	RoleEmployee = "employee"
)

// DefaultRoles is the seed set every database starts with.
var DefaultRoles = []Role{
	{ID: RoleIDAdmin, RoleName: RoleAdmin, Description: "System administrator"},
	{ID: RoleIDDoctor, RoleName: RoleDoctor, Description: "Medical practitioner"},
	{ID: RoleIDPatient, RoleName: RolePatient, Description: "Patient"},
	{ID: RoleIDEmployee, RoleName: RoleEmployee, Description: "Hospital staff"},
}

// RoleIDByName resolves a seeded role name to its id.
func RoleIDByName(name string) (int, bool) {
	for _, r := range DefaultRoles {
		if r.RoleName == name {
			return r.ID, true
		}
	}
	return 0, false
}
