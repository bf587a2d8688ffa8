package service

import (
	"fmt"

	"github.com/wanderplan/trips-backend-go/internal/models"
	"github.com/wanderplan/trips-backend-go/internal/repository"
)

// GroupService handles business logic for groups
type GroupService struct {
	repo *repository.GroupRepository
}

// NewGroupService creates a new group service
func NewGroupService(repo *repository.GroupRepository) *GroupService {
	return &GroupService{repo: repo}
}

// CreateGroup creates a group; the owner is added as an Owner member
func (s *GroupService) CreateGroup(g *models.Group) error {
	if g.GroupName == "" {
		return fmt.Errorf("group name is required")
	}
	if g.GroupType == "" {
		g.GroupType = models.GroupTypePlanned
	}
	if g.GroupType != models.GroupTypePlanned && g.GroupType != models.GroupTypeRandom {
		return fmt.Errorf("unknown group type %q", g.GroupType)
	}

	return s.repo.Create(g)
}

// GetGroup retrieves a group; nil when not found
func (s *GroupService) GetGroup(gid int64) (*models.Group, error) {
	return s.repo.GetByGID(gid)
}

// ListGroups retrieves groups with skip/limit pagination
func (s *GroupService) ListGroups(skip, limit int) ([]models.Group, error) {
	return s.repo.List(skip, limit)
}

// ListGroupsByUser retrieves the groups a user belongs to
func (s *GroupService) ListGroupsByUser(uid string) ([]models.Group, error) {
	return s.repo.ListByUser(uid)
}

// UpdateGroup replaces the mutable group fields
func (s *GroupService) UpdateGroup(gid int64, upd models.GroupUpdate) (bool, error) {
	return s.repo.Update(gid, upd)
}

// DeleteGroup removes a group and its memberships
func (s *GroupService) DeleteGroup(gid int64) (bool, error) {
	return s.repo.Delete(gid)
}
