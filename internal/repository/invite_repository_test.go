package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/trips-backend-go/internal/models"
)

func TestInviteCreateStartsPending(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	invitee := seedUser(t, db, "invitee@example.com")
	g := seedGroup(t, db, owner.UID, "Crew")
	repo := NewInviteRepository(db)

	inv := &models.Invite{
		UID:       invitee.UID,
		GID:       g.GID,
		InvitedBy: owner.UID,
		Role:      models.RoleMember,
	}
	require.NoError(t, repo.Create(inv))
	require.NotZero(t, inv.ID)
	assert.Equal(t, models.InviteStatusPending, inv.Status)

	got, err := repo.GetByID(inv.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsPending())
	assert.Equal(t, owner.UID, got.InvitedBy)
}

func TestInviteGetMissingReturnsNil(t *testing.T) {
	db := newTestDB(t)

	got, err := NewInviteRepository(db).GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInviteLists(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	invitee := seedUser(t, db, "invitee@example.com")
	g1 := seedGroup(t, db, owner.UID, "One")
	g2 := seedGroup(t, db, owner.UID, "Two")
	repo := NewInviteRepository(db)

	for _, gid := range []int64{g1.GID, g2.GID} {
		require.NoError(t, repo.Create(&models.Invite{
			UID: invitee.UID, GID: gid, InvitedBy: owner.UID, Role: models.RoleMember,
		}))
	}

	byUser, err := repo.ListByUser(invitee.UID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byGroup, err := repo.ListByGroup(g1.GID)
	require.NoError(t, err)
	require.Len(t, byGroup, 1)
	assert.Equal(t, g1.GID, byGroup[0].GID)
}

func TestInviteUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	invitee := seedUser(t, db, "invitee@example.com")
	g := seedGroup(t, db, owner.UID, "Crew")
	repo := NewInviteRepository(db)

	inv := &models.Invite{UID: invitee.UID, GID: g.GID, InvitedBy: owner.UID, Role: models.RoleMember}
	require.NoError(t, repo.Create(inv))

	ok, err := repo.UpdateStatus(inv.ID, models.InviteStatusAccepted)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(inv.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.InviteStatusAccepted, got.Status)
	assert.False(t, got.IsPending())

	ok, err = repo.UpdateStatus(9999, models.InviteStatusDeclined)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInviteDelete(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	invitee := seedUser(t, db, "invitee@example.com")
	g := seedGroup(t, db, owner.UID, "Crew")
	repo := NewInviteRepository(db)

	inv := &models.Invite{UID: invitee.UID, GID: g.GID, InvitedBy: owner.UID, Role: models.RoleMember}
	require.NoError(t, repo.Create(inv))

	ok, err := repo.Delete(inv.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(inv.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
