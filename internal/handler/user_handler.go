package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/trips-backend-go/internal/models"
	"github.com/wanderplan/trips-backend-go/internal/service"
	"github.com/wanderplan/trips-backend-go/pkg/response"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers handles GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, err := h.service.ListUsers(skip, limit)
	if err != nil {
		response.InternalError(c, "Failed to list users")
		return
	}

	response.Success(c, users)
}

// GetUser handles GET /api/v1/users/:uid
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Param("uid"))
	if err != nil {
		response.InternalError(c, "Failed to get user")
		return
	}
	if user == nil {
		response.NotFound(c, "User not found")
		return
	}

	response.Success(c, user)
}

// UpdateUser handles PUT /api/v1/users/:uid
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var upd models.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	found, err := h.service.UpdateUser(c.Param("uid"), upd)
	if err != nil {
		response.InternalError(c, "Failed to update user")
		return
	}
	if !found {
		response.NotFound(c, "User not found")
		return
	}

	response.Success(c, gin.H{"updated": true})
}

// DeleteUser handles DELETE /api/v1/users/:uid
func (h *UserHandler) DeleteUser(c *gin.Context) {
	found, err := h.service.DeleteUser(c.Param("uid"))
	if err != nil {
		response.InternalError(c, "Failed to delete user")
		return
	}
	if !found {
		response.NotFound(c, "User not found")
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
