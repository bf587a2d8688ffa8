package models

import "time"

// GroupType constants
const (
	GroupTypePlanned = "planned"
	GroupTypeRandom  = "random"
)

// Group represents a trip-planning group owned by a user
type Group struct {
	GID          int64     `json:"gid" db:"gid"`
	GroupName    string    `json:"group_name" db:"group_name"`
	OwnerUID     string    `json:"owner" db:"owner_uid"`
	LocationLat  float64   `json:"location_lat" db:"location_lat"`
	LocationLong float64   `json:"location_long" db:"location_long"`
	GroupType    string    `json:"group_type" db:"group_type"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// GroupUpdate carries the mutable group fields
type GroupUpdate struct {
	GroupName    string  `json:"group_name"`
	LocationLat  float64 `json:"location_lat"`
	LocationLong float64 `json:"location_long"`
	GroupType    string  `json:"group_type"`
}
