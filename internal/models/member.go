package models

import "time"

// Role constants
const (
	RoleOwner  = "Owner"
	RoleAdmin  = "Admin"
	RoleMember = "Member"
)

// Member links a user to a group with a role
type Member struct {
	UID      string    `json:"uid" db:"uid"`
	GID      int64     `json:"gid" db:"gid"`
	Role     string    `json:"role" db:"role"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}

// ValidRole reports whether role is one of the known member roles
func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}
