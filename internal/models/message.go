package models

import "time"

// Message represents one chat message stored for a group
type Message struct {
	ID         int64     `json:"id" db:"id"`
	GID        int64     `json:"group_id" db:"gid"`
	SenderUID  string    `json:"sender_uid" db:"sender_uid"`
	SenderName string    `json:"sender_name" db:"sender_name"`
	Text       string    `json:"text" db:"text"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
}
