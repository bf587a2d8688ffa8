package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/trips-backend-go/internal/models"
	"github.com/wanderplan/trips-backend-go/internal/service"
	"github.com/wanderplan/trips-backend-go/pkg/response"
)

// MessageHandler handles HTTP requests for group chat messages
type MessageHandler struct {
	service *service.MessageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(service *service.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// SendMessageRequest represents the request body for sending a message
type SendMessageRequest struct {
	GroupID    int64  `json:"group_id" binding:"required"`
	SenderUID  string `json:"sender_uid" binding:"required"`
	SenderName string `json:"sender_name"`
	Text       string `json:"text" binding:"required"`
}

// SendMessage handles POST /api/v1/messages
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	message := &models.Message{
		GID:        req.GroupID,
		SenderUID:  req.SenderUID,
		SenderName: req.SenderName,
		Text:       req.Text,
	}
	if err := h.service.Send(message); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message_id": message.ID})
}

// GetMessages handles GET /api/v1/messages?group_id=
func (h *MessageHandler) GetMessages(c *gin.Context) {
	gid, err := strconv.ParseInt(c.Query("group_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid group_id")
		return
	}

	messages, err := h.service.GetMessages(gid)
	if err != nil {
		response.InternalError(c, "Failed to get messages")
		return
	}

	response.Success(c, messages)
}
