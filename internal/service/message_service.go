package service

import (
	"fmt"
	"time"

	"github.com/wanderplan/trips-backend-go/internal/models"
	"github.com/wanderplan/trips-backend-go/internal/repository"
)

// MessageService handles business logic for group chat messages.
// Delivery is storage-then-poll: Send persists, GetMessages returns the
// group's history in ascending timestamp order.
type MessageService struct {
	repo *repository.MessageRepository
}

// NewMessageService creates a new message service
func NewMessageService(repo *repository.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

// Send stores one message, stamping it with the current time
func (s *MessageService) Send(m *models.Message) error {
	if m.Text == "" {
		return fmt.Errorf("message text is required")
	}

	m.Timestamp = time.Now().UTC()
	return s.repo.Create(m)
}

// GetMessages retrieves a group's messages, oldest first
func (s *MessageService) GetMessages(gid int64) ([]models.Message, error) {
	return s.repo.ListByGroup(gid)
}
