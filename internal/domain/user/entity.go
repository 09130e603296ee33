package user

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"  // Manages sites, workers and shifts
	RoleWorker Role = "worker" // Clocks in/out of assigned shifts
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleWorker),
}

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	FullName     string
	Role         Role
	IsActive     bool
	AvatarURL    *string
	GoogleID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanManage reports whether the user may perform administrative operations.
// Deactivated admins keep their role but lose access.
func (u *User) CanManage() bool {
	return u.IsAdmin() && u.IsActive
}
