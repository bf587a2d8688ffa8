package main

import (
	"log"

	"github.com/wanderplan/trips-backend-go/internal/api"
	"github.com/wanderplan/trips-backend-go/internal/config"
	"github.com/wanderplan/trips-backend-go/internal/database"
	"github.com/wanderplan/trips-backend-go/internal/handler"
	"github.com/wanderplan/trips-backend-go/internal/landmarks"
	"github.com/wanderplan/trips-backend-go/internal/places"
	"github.com/wanderplan/trips-backend-go/internal/repository"
	"github.com/wanderplan/trips-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	tripRepo := repository.NewTripRepository(db)

	searcher := places.NewMapboxSearcher(cfg.PlacesBaseURL, cfg.MapboxToken, cfg.PlacesTimeout)
	generator := landmarks.NewGenerator(searcher, nil)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	userService := service.NewUserService(userRepo)
	groupService := service.NewGroupService(groupRepo)
	memberService := service.NewMemberService(memberRepo)
	inviteService := service.NewInviteService(inviteRepo, memberRepo)
	messageService := service.NewMessageService(messageRepo)
	tripService := service.NewTripService(tripRepo, generator)

	router := api.SetupRouter(cfg, api.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		User:    handler.NewUserHandler(userService),
		Group:   handler.NewGroupHandler(groupService),
		Member:  handler.NewMemberHandler(memberService),
		Invite:  handler.NewInviteHandler(inviteService),
		Message: handler.NewMessageHandler(messageService),
		Trip:    handler.NewTripHandler(tripService),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
