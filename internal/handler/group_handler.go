package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/trips-backend-go/internal/models"
	"github.com/wanderplan/trips-backend-go/internal/service"
	"github.com/wanderplan/trips-backend-go/pkg/response"
)

// GroupHandler handles HTTP requests for groups
type GroupHandler struct {
	service *service.GroupService
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service *service.GroupService) *GroupHandler {
	return &GroupHandler{service: service}
}

// CreateGroupRequest represents the request body for creating a group
type CreateGroupRequest struct {
	GroupName    string  `json:"group_name" binding:"required"`
	OwnerUID     string  `json:"owner" binding:"required"`
	LocationLat  float64 `json:"location_lat"`
	LocationLong float64 `json:"location_long"`
	GroupType    string  `json:"group_type"`
}

// CreateGroup handles POST /api/v1/groups
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	group := &models.Group{
		GroupName:    req.GroupName,
		OwnerUID:     req.OwnerUID,
		LocationLat:  req.LocationLat,
		LocationLong: req.LocationLong,
		GroupType:    req.GroupType,
	}
	if err := h.service.CreateGroup(group); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, group)
}

// GetGroup handles GET /api/v1/groups/:gid
func (h *GroupHandler) GetGroup(c *gin.Context) {
	gid, err := strconv.ParseInt(c.Param("gid"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	group, err := h.service.GetGroup(gid)
	if err != nil {
		response.InternalError(c, "Failed to get group")
		return
	}
	if group == nil {
		response.NotFound(c, "Group not found")
		return
	}

	response.Success(c, group)
}

// ListGroups handles GET /api/v1/groups
func (h *GroupHandler) ListGroups(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	groups, err := h.service.ListGroups(skip, limit)
	if err != nil {
		response.InternalError(c, "Failed to list groups")
		return
	}

	response.Success(c, groups)
}

// ListGroupsByUser handles GET /api/v1/groups/user/:uid
func (h *GroupHandler) ListGroupsByUser(c *gin.Context) {
	groups, err := h.service.ListGroupsByUser(c.Param("uid"))
	if err != nil {
		response.InternalError(c, "Failed to list groups for user")
		return
	}

	response.Success(c, groups)
}

// UpdateGroup handles PUT /api/v1/groups/:gid
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	gid, err := strconv.ParseInt(c.Param("gid"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	var upd models.GroupUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	found, err := h.service.UpdateGroup(gid, upd)
	if err != nil {
		response.InternalError(c, "Failed to update group")
		return
	}
	if !found {
		response.NotFound(c, "Group not found")
		return
	}

	response.Success(c, gin.H{"updated": true})
}

// DeleteGroup handles DELETE /api/v1/groups/:gid
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	gid, err := strconv.ParseInt(c.Param("gid"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	found, err := h.service.DeleteGroup(gid)
	if err != nil {
		response.InternalError(c, "Failed to delete group")
		return
	}
	if !found {
		response.NotFound(c, "Group not found")
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
