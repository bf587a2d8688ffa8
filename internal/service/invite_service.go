package service

import (
	"fmt"

	"github.com/wanderplan/trips-backend-go/internal/models"
	"github.com/wanderplan/trips-backend-go/internal/repository"
)

// InviteService handles business logic for invites
type InviteService struct {
	repo    *repository.InviteRepository
	members *repository.MemberRepository
}

// NewInviteService creates a new invite service
func NewInviteService(repo *repository.InviteRepository, members *repository.MemberRepository) *InviteService {
	return &InviteService{repo: repo, members: members}
}

// CreateInvite records a pending invite
func (s *InviteService) CreateInvite(i *models.Invite) error {
	if i.Role == "" {
		i.Role = models.RoleMember
	}
	if !models.ValidRole(i.Role) {
		return fmt.Errorf("unknown role %q", i.Role)
	}
	return s.repo.Create(i)
}

// GetInvite retrieves an invite; nil when not found
func (s *InviteService) GetInvite(id int64) (*models.Invite, error) {
	return s.repo.GetByID(id)
}

// ListByUser retrieves invites addressed to a user
func (s *InviteService) ListByUser(uid string) ([]models.Invite, error) {
	return s.repo.ListByUser(uid)
}

// ListByGroup retrieves invites for a group
func (s *InviteService) ListByGroup(gid int64) ([]models.Invite, error) {
	return s.repo.ListByGroup(gid)
}

// Accept marks the invite accepted and inserts the membership row.
// Returns the invite, or nil when it does not exist.
func (s *InviteService) Accept(id int64) (*models.Invite, error) {
	invite, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invite == nil {
		return nil, nil
	}
	if !invite.IsPending() {
		return nil, fmt.Errorf("invite %d is already %s", id, invite.Status)
	}

	if _, err := s.repo.UpdateStatus(id, models.InviteStatusAccepted); err != nil {
		return nil, err
	}

	member := &models.Member{UID: invite.UID, GID: invite.GID, Role: invite.Role}
	if err := s.members.Create(member); err != nil {
		return nil, err
	}

	invite.Status = models.InviteStatusAccepted
	return invite, nil
}

// Decline marks the invite declined. Returns the invite, or nil when it does
// not exist.
func (s *InviteService) Decline(id int64) (*models.Invite, error) {
	invite, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invite == nil {
		return nil, nil
	}
	if !invite.IsPending() {
		return nil, fmt.Errorf("invite %d is already %s", id, invite.Status)
	}

	if _, err := s.repo.UpdateStatus(id, models.InviteStatusDeclined); err != nil {
		return nil, err
	}

	invite.Status = models.InviteStatusDeclined
	return invite, nil
}

// DeleteInvite removes an invite
func (s *InviteService) DeleteInvite(id int64) (bool, error) {
	return s.repo.Delete(id)
}
