package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/trips-backend-go/internal/database"
	"github.com/wanderplan/trips-backend-go/internal/models"
	"github.com/wanderplan/trips-backend-go/internal/repository"
)

func newInviteService(t *testing.T) (*InviteService, *database.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewInviteService(repository.NewInviteRepository(db), repository.NewMemberRepository(db)), db
}

func TestInviteDefaultsRoleToMember(t *testing.T) {
	svc, db := newInviteService(t)
	owner := seedUser(t, db, "owner@example.com")
	invitee := seedUser(t, db, "invitee@example.com")
	g := seedGroup(t, db, owner.UID, "Crew")

	inv := &models.Invite{UID: invitee.UID, GID: g.GID, InvitedBy: owner.UID}
	require.NoError(t, svc.CreateInvite(inv))
	assert.Equal(t, models.RoleMember, inv.Role)
	assert.Equal(t, models.InviteStatusPending, inv.Status)
}

func TestInviteRejectsUnknownRole(t *testing.T) {
	svc, _ := newInviteService(t)

	err := svc.CreateInvite(&models.Invite{UID: "u", GID: 1, InvitedBy: "o", Role: "Superuser"})
	assert.Error(t, err)
}

func TestAcceptInviteCreatesMembership(t *testing.T) {
	svc, db := newInviteService(t)
	owner := seedUser(t, db, "owner@example.com")
	invitee := seedUser(t, db, "invitee@example.com")
	g := seedGroup(t, db, owner.UID, "Crew")

	inv := &models.Invite{UID: invitee.UID, GID: g.GID, InvitedBy: owner.UID, Role: models.RoleAdmin}
	require.NoError(t, svc.CreateInvite(inv))

	accepted, err := svc.Accept(inv.ID)
	require.NoError(t, err)
	require.NotNil(t, accepted)
	assert.Equal(t, models.InviteStatusAccepted, accepted.Status)

	member, err := repository.NewMemberRepository(db).Get(g.GID, invitee.UID)
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, models.RoleAdmin, member.Role)

	// a settled invite cannot be accepted again
	_, err = svc.Accept(inv.ID)
	assert.Error(t, err)
}

func TestDeclineInvite(t *testing.T) {
	svc, db := newInviteService(t)
	owner := seedUser(t, db, "owner@example.com")
	invitee := seedUser(t, db, "invitee@example.com")
	g := seedGroup(t, db, owner.UID, "Crew")

	inv := &models.Invite{UID: invitee.UID, GID: g.GID, InvitedBy: owner.UID}
	require.NoError(t, svc.CreateInvite(inv))

	declined, err := svc.Decline(inv.ID)
	require.NoError(t, err)
	require.NotNil(t, declined)
	assert.Equal(t, models.InviteStatusDeclined, declined.Status)

	// no membership row appears on decline
	member, err := repository.NewMemberRepository(db).Get(g.GID, invitee.UID)
	require.NoError(t, err)
	assert.Nil(t, member)

	_, err = svc.Decline(inv.ID)
	assert.Error(t, err)
}

func TestAcceptMissingInviteReturnsNil(t *testing.T) {
	svc, _ := newInviteService(t)

	accepted, err := svc.Accept(9999)
	require.NoError(t, err)
	assert.Nil(t, accepted)
}
