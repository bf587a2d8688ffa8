package service

import (
	"fmt"

	"github.com/wanderplan/trips-backend-go/internal/models"
	"github.com/wanderplan/trips-backend-go/internal/repository"
)

// MemberService handles business logic for group memberships
type MemberService struct {
	repo *repository.MemberRepository
}

// NewMemberService creates a new member service
func NewMemberService(repo *repository.MemberRepository) *MemberService {
	return &MemberService{repo: repo}
}

// AddMember inserts a membership row
func (s *MemberService) AddMember(m *models.Member) error {
	if !models.ValidRole(m.Role) {
		return fmt.Errorf("unknown role %q", m.Role)
	}

	existing, err := s.repo.Get(m.GID, m.UID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("user %s is already a member of group %d", m.UID, m.GID)
	}

	return s.repo.Create(m)
}

// ListByGroup retrieves all members of a group
func (s *MemberService) ListByGroup(gid int64) ([]models.Member, error) {
	return s.repo.ListByGroup(gid)
}

// ListByUser retrieves all memberships of a user
func (s *MemberService) ListByUser(uid string) ([]models.Member, error) {
	return s.repo.ListByUser(uid)
}

// UpdateRole changes a member's role
func (s *MemberService) UpdateRole(gid int64, uid, role string) (bool, error) {
	if !models.ValidRole(role) {
		return false, fmt.Errorf("unknown role %q", role)
	}
	return s.repo.UpdateRole(gid, uid, role)
}

// RemoveMember deletes a membership
func (s *MemberService) RemoveMember(gid int64, uid string) (bool, error) {
	return s.repo.Delete(gid, uid)
}
