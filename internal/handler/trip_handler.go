package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/trips-backend-go/internal/service"
	"github.com/wanderplan/trips-backend-go/pkg/response"
)

// TripHandler handles HTTP requests for trips
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// GenerateTrip handles POST /api/v1/trips/generate. Parameters arrive either
// as a JSON body or as query/form fields; ShouldBind picks the binding from
// the content type.
func (h *TripHandler) GenerateTrip(c *gin.Context) {
	var req service.GenerateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request parameters")
		return
	}

	trip, err := h.service.GenerateTrip(c.Request.Context(), req)
	if err != nil {
		response.InternalError(c, "Failed to generate trip")
		return
	}

	response.Success(c, trip)
}

// CustomTripRequest represents the request body for a caller-supplied trip
type CustomTripRequest struct {
	GID       int64                    `json:"gid" binding:"required"`
	UID       string                   `json:"uid" binding:"required"`
	Landmarks []map[string]interface{} `json:"landmarks" binding:"required"`
}

// CreateCustomTrip handles POST /api/v1/trips/custom
func (h *TripHandler) CreateCustomTrip(c *gin.Context) {
	var req CustomTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	trip, err := h.service.CreateCustomTrip(req.GID, req.UID, req.Landmarks)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, trip)
}

// GetTrip handles GET /api/v1/trips/:id
func (h *TripHandler) GetTrip(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid trip ID")
		return
	}

	trip, err := h.service.GetTrip(id)
	if err != nil {
		response.InternalError(c, "Failed to get trip")
		return
	}
	if trip == nil {
		response.NotFound(c, "Trip not found")
		return
	}

	response.Success(c, trip)
}

// ListByGroup handles GET /api/v1/trips/group/:gid
func (h *TripHandler) ListByGroup(c *gin.Context) {
	gid, err := strconv.ParseInt(c.Param("gid"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	trips, err := h.service.ListByGroup(gid)
	if err != nil {
		response.InternalError(c, "Failed to list trips")
		return
	}

	response.Success(c, trips)
}

// ListByUser handles GET /api/v1/trips/user/:uid
func (h *TripHandler) ListByUser(c *gin.Context) {
	trips, err := h.service.ListByUser(c.Param("uid"))
	if err != nil {
		response.InternalError(c, "Failed to list trips")
		return
	}

	response.Success(c, trips)
}

// UpdateTripRequest represents the request body for a landmark-list replacement
type UpdateTripRequest struct {
	Landmarks []map[string]interface{} `json:"landmarks" binding:"required"`
}

// UpdateTrip handles PUT /api/v1/trips/:id
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid trip ID")
		return
	}

	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	found, err := h.service.ReplaceLandmarks(id, req.Landmarks)
	if err != nil {
		response.InternalError(c, "Failed to update trip")
		return
	}
	if !found {
		response.NotFound(c, "Trip not found")
		return
	}

	response.Success(c, gin.H{"updated": true})
}

// DeleteTrip handles DELETE /api/v1/trips/:id
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid trip ID")
		return
	}

	found, err := h.service.DeleteTrip(id)
	if err != nil {
		response.InternalError(c, "Failed to delete trip")
		return
	}
	if !found {
		response.NotFound(c, "Trip not found")
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
