package repository

import (
	"fmt"

	"github.com/wanderplan/trips-backend-go/internal/database"
	"github.com/wanderplan/trips-backend-go/internal/models"
)

// MessageRepository handles database operations for group chat messages
type MessageRepository struct {
	db *database.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *database.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create stores one message and fills in its id
func (r *MessageRepository) Create(m *models.Message) error {
	query := `INSERT INTO messages (gid, sender_uid, sender_name, text, timestamp)
		VALUES (?, ?, ?, ?, ?)`

	res, err := r.db.Exec(query, m.GID, m.SenderUID, m.SenderName, m.Text, m.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read message id: %w", err)
	}
	m.ID = id
	return nil
}

// ListByGroup retrieves a group's messages in ascending timestamp order
func (r *MessageRepository) ListByGroup(gid int64) ([]models.Message, error) {
	query := `SELECT id, gid, sender_uid, sender_name, text, timestamp
		FROM messages WHERE gid = ? ORDER BY timestamp ASC, id ASC`

	rows, err := r.db.Query(query, gid)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.GID, &m.SenderUID, &m.SenderName, &m.Text, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
