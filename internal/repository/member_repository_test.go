package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/trips-backend-go/internal/models"
)

func TestMemberCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	joiner := seedUser(t, db, "joiner@example.com")
	g := seedGroup(t, db, owner.UID, "Crew")
	repo := NewMemberRepository(db)

	require.NoError(t, repo.Create(&models.Member{
		UID: joiner.UID, GID: g.GID, Role: models.RoleAdmin,
	}))

	got, err := repo.Get(g.GID, joiner.UID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.RoleAdmin, got.Role)

	missing, err := repo.Get(g.GID, "no-such-uid")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemberDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	g := seedGroup(t, db, owner.UID, "Crew")
	repo := NewMemberRepository(db)

	// the owner row already exists from group creation
	err := repo.Create(&models.Member{UID: owner.UID, GID: g.GID, Role: models.RoleMember})
	assert.Error(t, err)
}

func TestMemberLists(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	joiner := seedUser(t, db, "joiner@example.com")
	g1 := seedGroup(t, db, owner.UID, "One")
	seedGroup(t, db, owner.UID, "Two")
	repo := NewMemberRepository(db)

	require.NoError(t, repo.Create(&models.Member{UID: joiner.UID, GID: g1.GID, Role: models.RoleMember}))

	byGroup, err := repo.ListByGroup(g1.GID)
	require.NoError(t, err)
	assert.Len(t, byGroup, 2)

	// owner belongs to both groups
	byUser, err := repo.ListByUser(owner.UID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)
}

func TestMemberUpdateRole(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	joiner := seedUser(t, db, "joiner@example.com")
	g := seedGroup(t, db, owner.UID, "Crew")
	repo := NewMemberRepository(db)

	require.NoError(t, repo.Create(&models.Member{UID: joiner.UID, GID: g.GID, Role: models.RoleMember}))

	ok, err := repo.UpdateRole(g.GID, joiner.UID, models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.Get(g.GID, joiner.UID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.RoleAdmin, got.Role)

	ok, err = repo.UpdateRole(g.GID, "no-such-uid", models.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemberDelete(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	joiner := seedUser(t, db, "joiner@example.com")
	g := seedGroup(t, db, owner.UID, "Crew")
	repo := NewMemberRepository(db)

	require.NoError(t, repo.Create(&models.Member{UID: joiner.UID, GID: g.GID, Role: models.RoleMember}))

	ok, err := repo.Delete(g.GID, joiner.UID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(g.GID, joiner.UID)
	require.NoError(t, err)
	assert.False(t, ok)
}
