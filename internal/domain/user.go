package domain

import "time"

// Role enumerates application roles with an ordered privilege level.
type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// Level maps a role onto its rank in the privilege order
// staff < manager < admin. Unknown roles rank below staff.
func (r Role) Level() int {
	switch r {
	case RoleStaff:
		return 1
	case RoleManager:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether the role carries at least the privileges of other.
func (r Role) AtLeast(other Role) bool {
	return r.Level() >= other.Level() && r.Level() > 0
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r.Level() > 0
}

// User is an application account operated by staff, managers or admins.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
