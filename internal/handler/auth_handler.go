package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/wanderplan/trips-backend-go/internal/service"
	"github.com/wanderplan/trips-backend-go/pkg/response"
)

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.service.Register(req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, user)
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	token, user, err := h.service.Login(req.Email, req.Password)
	if err == service.ErrInvalidCredentials {
		response.Unauthorized(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, "Failed to log in")
		return
	}

	response.Success(c, gin.H{
		"token": token,
		"user":  user,
	})
}

// ResolveEmail handles GET /api/v1/auth/resolve?email=
func (h *AuthHandler) ResolveEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.BadRequest(c, "email is required")
		return
	}

	uid, err := h.service.ResolveEmail(email)
	if err != nil {
		response.InternalError(c, "Failed to resolve email")
		return
	}
	if uid == "" {
		response.NotFound(c, "No account for that email")
		return
	}

	response.Success(c, gin.H{"uid": uid})
}
