package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/trips-backend-go/internal/models"
	"github.com/wanderplan/trips-backend-go/internal/service"
	"github.com/wanderplan/trips-backend-go/pkg/response"
)

// MemberHandler handles HTTP requests for group memberships
type MemberHandler struct {
	service *service.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(service *service.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

// AddMemberRequest represents the request body for adding a member
type AddMemberRequest struct {
	UID  string `json:"uid" binding:"required"`
	GID  int64  `json:"gid" binding:"required"`
	Role string `json:"role" binding:"required"`
}

// AddMember handles POST /api/v1/members
func (h *MemberHandler) AddMember(c *gin.Context) {
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	member := &models.Member{UID: req.UID, GID: req.GID, Role: req.Role}
	if err := h.service.AddMember(member); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, member)
}

// ListByGroup handles GET /api/v1/members/group/:gid
func (h *MemberHandler) ListByGroup(c *gin.Context) {
	gid, err := strconv.ParseInt(c.Param("gid"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	members, err := h.service.ListByGroup(gid)
	if err != nil {
		response.InternalError(c, "Failed to list members")
		return
	}

	response.Success(c, members)
}

// ListByUser handles GET /api/v1/members/user/:uid
func (h *MemberHandler) ListByUser(c *gin.Context) {
	members, err := h.service.ListByUser(c.Param("uid"))
	if err != nil {
		response.InternalError(c, "Failed to list memberships")
		return
	}

	response.Success(c, members)
}

// UpdateRoleRequest represents the request body for a role change
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateRole handles PUT /api/v1/members/:gid/:uid
func (h *MemberHandler) UpdateRole(c *gin.Context) {
	gid, err := strconv.ParseInt(c.Param("gid"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	found, err := h.service.UpdateRole(gid, c.Param("uid"), req.Role)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !found {
		response.NotFound(c, "Member not found")
		return
	}

	response.Success(c, gin.H{"updated": true})
}

// RemoveMember handles DELETE /api/v1/members/:gid/:uid
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	gid, err := strconv.ParseInt(c.Param("gid"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	found, err := h.service.RemoveMember(gid, c.Param("uid"))
	if err != nil {
		response.InternalError(c, "Failed to remove member")
		return
	}
	if !found {
		response.NotFound(c, "Member not found")
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
