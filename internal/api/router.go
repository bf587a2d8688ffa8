package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/trips-backend-go/internal/config"
	"github.com/wanderplan/trips-backend-go/internal/handler"
	"github.com/wanderplan/trips-backend-go/internal/middleware"
)

// Handlers bundles every HTTP handler the router mounts
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Group   *handler.GroupHandler
	Member  *handler.MemberHandler
	Invite  *handler.InviteHandler
	Message *handler.MessageHandler
	Trip    *handler.TripHandler
}

// SetupRouter wires middleware and routes
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(120, time.Minute))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Trips Backend API is running",
		})
	})

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/resolve", h.Auth.ResolveEmail)
	}

	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.JWTSecret))
	{
		users := protected.Group("/users")
		{
			users.GET("", h.User.ListUsers)
			users.GET("/:uid", h.User.GetUser)
			users.PUT("/:uid", h.User.UpdateUser)
			users.DELETE("/:uid", h.User.DeleteUser)
		}

		groups := protected.Group("/groups")
		{
			groups.POST("", h.Group.CreateGroup)
			groups.GET("", h.Group.ListGroups)
			groups.GET("/:gid", h.Group.GetGroup)
			groups.GET("/user/:uid", h.Group.ListGroupsByUser)
			groups.PUT("/:gid", h.Group.UpdateGroup)
			groups.DELETE("/:gid", h.Group.DeleteGroup)
		}

		members := protected.Group("/members")
		{
			members.POST("", h.Member.AddMember)
			members.GET("/group/:gid", h.Member.ListByGroup)
			members.GET("/user/:uid", h.Member.ListByUser)
			members.PUT("/:gid/:uid", h.Member.UpdateRole)
			members.DELETE("/:gid/:uid", h.Member.RemoveMember)
		}

		invites := protected.Group("/invites")
		{
			invites.POST("", h.Invite.CreateInvite)
			invites.GET("/user/:uid", h.Invite.ListByUser)
			invites.GET("/group/:gid", h.Invite.ListByGroup)
			invites.POST("/:id/accept", h.Invite.Accept)
			invites.POST("/:id/decline", h.Invite.Decline)
			invites.DELETE("/:id", h.Invite.DeleteInvite)
		}

		messages := protected.Group("/messages")
		{
			messages.POST("", h.Message.SendMessage)
			messages.GET("", h.Message.GetMessages)
		}

		trips := protected.Group("/trips")
		{
			trips.POST("/generate", h.Trip.GenerateTrip)
			trips.POST("/custom", h.Trip.CreateCustomTrip)
			trips.GET("/:id", h.Trip.GetTrip)
			trips.GET("/group/:gid", h.Trip.ListByGroup)
			trips.GET("/user/:uid", h.Trip.ListByUser)
			trips.PUT("/:id", h.Trip.UpdateTrip)
			trips.DELETE("/:id", h.Trip.DeleteTrip)
		}
	}

	return r
}
