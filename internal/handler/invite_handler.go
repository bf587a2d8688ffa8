package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/trips-backend-go/internal/models"
	"github.com/wanderplan/trips-backend-go/internal/service"
	"github.com/wanderplan/trips-backend-go/pkg/response"
)

// InviteHandler handles HTTP requests for invites
type InviteHandler struct {
	service *service.InviteService
}

// NewInviteHandler creates a new invite handler
func NewInviteHandler(service *service.InviteService) *InviteHandler {
	return &InviteHandler{service: service}
}

// CreateInviteRequest represents the request body for creating an invite
type CreateInviteRequest struct {
	UID       string `json:"uid" binding:"required"`
	GID       int64  `json:"gid" binding:"required"`
	InvitedBy string `json:"invited_by" binding:"required"`
	Role      string `json:"role"`
}

// CreateInvite handles POST /api/v1/invites
func (h *InviteHandler) CreateInvite(c *gin.Context) {
	var req CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invite := &models.Invite{
		UID:       req.UID,
		GID:       req.GID,
		InvitedBy: req.InvitedBy,
		Role:      req.Role,
	}
	if err := h.service.CreateInvite(invite); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, invite)
}

// ListByUser handles GET /api/v1/invites/user/:uid
func (h *InviteHandler) ListByUser(c *gin.Context) {
	invites, err := h.service.ListByUser(c.Param("uid"))
	if err != nil {
		response.InternalError(c, "Failed to list invites")
		return
	}

	response.Success(c, invites)
}

// ListByGroup handles GET /api/v1/invites/group/:gid
func (h *InviteHandler) ListByGroup(c *gin.Context) {
	gid, err := strconv.ParseInt(c.Param("gid"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	invites, err := h.service.ListByGroup(gid)
	if err != nil {
		response.InternalError(c, "Failed to list invites")
		return
	}

	response.Success(c, invites)
}

// Accept handles POST /api/v1/invites/:id/accept
func (h *InviteHandler) Accept(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid invite ID")
		return
	}

	invite, err := h.service.Accept(id)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if invite == nil {
		response.NotFound(c, "Invite not found")
		return
	}

	response.Success(c, invite)
}

// Decline handles POST /api/v1/invites/:id/decline
func (h *InviteHandler) Decline(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid invite ID")
		return
	}

	invite, err := h.service.Decline(id)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if invite == nil {
		response.NotFound(c, "Invite not found")
		return
	}

	response.Success(c, invite)
}

// DeleteInvite handles DELETE /api/v1/invites/:id
func (h *InviteHandler) DeleteInvite(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid invite ID")
		return
	}

	found, err := h.service.DeleteInvite(id)
	if err != nil {
		response.InternalError(c, "Failed to delete invite")
		return
	}
	if !found {
		response.NotFound(c, "Invite not found")
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
