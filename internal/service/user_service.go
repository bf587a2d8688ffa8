package service

import (
	"github.com/wanderplan/trips-backend-go/internal/models"
	"github.com/wanderplan/trips-backend-go/internal/repository"
)

// UserService handles business logic for users
type UserService struct {
	repo *repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// ListUsers retrieves users with skip/limit pagination
func (s *UserService) ListUsers(skip, limit int) ([]models.User, error) {
	return s.repo.List(skip, limit)
}

// GetUser retrieves a single user; nil when not found
func (s *UserService) GetUser(uid string) (*models.User, error) {
	return s.repo.GetByUID(uid)
}

// UpdateUser replaces the mutable profile fields
func (s *UserService) UpdateUser(uid string, upd models.UserUpdate) (bool, error) {
	return s.repo.Update(uid, upd)
}

// DeleteUser removes a user
func (s *UserService) DeleteUser(uid string) (bool, error) {
	return s.repo.Delete(uid)
}
