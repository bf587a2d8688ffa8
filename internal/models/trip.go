package models

import "time"

// Trip represents a generated or custom trip owned by a user within a group.
// The landmark list is stored as a JSON column and replaced as a whole on update.
type Trip struct {
	ID              int64      `json:"id" db:"id"`
	GID             int64      `json:"gid" db:"gid"`
	UID             string     `json:"uid" db:"uid"`
	LocationLat     float64    `json:"location_lat" db:"location_lat"`
	LocationLong    float64    `json:"location_long" db:"location_long"`
	NumDestinations int        `json:"num_destinations" db:"num_destinations"`
	Landmarks       []Landmark `json:"landmarks" db:"-"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}
