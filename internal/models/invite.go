package models

import "time"

// Invite status constants
const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusDeclined = "declined"
)

// Invite represents a pending membership offer for a user
type Invite struct {
	ID        int64     `json:"id" db:"id"`
	UID       string    `json:"uid" db:"uid"`
	GID       int64     `json:"gid" db:"gid"`
	InvitedBy string    `json:"invited_by" db:"invited_by"`
	Role      string    `json:"role" db:"role"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsPending reports whether the invite can still be accepted or declined
func (i *Invite) IsPending() bool {
	return i.Status == InviteStatusPending
}
