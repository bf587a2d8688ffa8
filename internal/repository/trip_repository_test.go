package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/trips-backend-go/internal/models"
)

func TestTripCreateAndGetRoundTrip(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "trips@example.com")
	group := seedGroup(t, db, owner.UID, "Weekend Crew")
	repo := NewTripRepository(db)

	landmarks := []models.Landmark{
		{Name: "Elm Gardens", Latitude: 40.01, Longitude: -74.0, Type: "Park"},
		{Name: "Harbor Grill", Latitude: 40.02, Longitude: -74.01, Type: "Food"},
	}

	trip := &models.Trip{
		GID:             group.GID,
		UID:             owner.UID,
		LocationLat:     40.0,
		LocationLong:    -74.0,
		NumDestinations: 2,
		Landmarks:       landmarks,
	}
	require.NoError(t, repo.Create(trip))
	require.NotZero(t, trip.ID)

	got, err := repo.GetByID(trip.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, group.GID, got.GID)
	assert.Equal(t, owner.UID, got.UID)
	assert.Equal(t, 2, got.NumDestinations)
	assert.Equal(t, landmarks, got.Landmarks)
}

func TestTripGetMissingReturnsNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewTripRepository(db)

	got, err := repo.GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTripCreateWithNilLandmarksStoresEmptyList(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "empty@example.com")
	group := seedGroup(t, db, owner.UID, "Empty Trip Group")
	repo := NewTripRepository(db)

	trip := &models.Trip{GID: group.GID, UID: owner.UID}
	require.NoError(t, repo.Create(trip))

	got, err := repo.GetByID(trip.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Landmarks)
}

func TestTripListByGroupAndUser(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "lists@example.com")
	other := seedUser(t, db, "other@example.com")
	group := seedGroup(t, db, owner.UID, "List Group")
	repo := NewTripRepository(db)

	for _, uid := range []string{owner.UID, owner.UID, other.UID} {
		require.NoError(t, repo.Create(&models.Trip{GID: group.GID, UID: uid}))
	}

	byGroup, err := repo.ListByGroup(group.GID)
	require.NoError(t, err)
	assert.Len(t, byGroup, 3)

	byUser, err := repo.ListByUser(owner.UID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)
	for _, trip := range byUser {
		assert.Equal(t, owner.UID, trip.UID)
	}

	// newest first
	require.Len(t, byGroup, 3)
	assert.Greater(t, byGroup[0].ID, byGroup[2].ID)
}

func TestTripReplaceLandmarks(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "replace@example.com")
	group := seedGroup(t, db, owner.UID, "Replace Group")
	repo := NewTripRepository(db)

	trip := &models.Trip{
		GID:             group.GID,
		UID:             owner.UID,
		NumDestinations: 1,
		Landmarks:       []models.Landmark{{Name: "Old Stop", Type: "custom"}},
	}
	require.NoError(t, repo.Create(trip))

	replacement := []models.Landmark{
		{Name: "New Stop A", Latitude: 40.1, Longitude: -74.1, Type: "custom"},
		{Name: "New Stop B", Latitude: 40.2, Longitude: -74.2, Type: "custom"},
	}
	ok, err := repo.ReplaceLandmarks(trip.ID, replacement)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(trip.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, replacement, got.Landmarks)
	assert.Equal(t, 2, got.NumDestinations)
}

func TestTripReplaceLandmarksMissingTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewTripRepository(db)

	ok, err := repo.ReplaceLandmarks(12345, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTripDelete(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "delete@example.com")
	group := seedGroup(t, db, owner.UID, "Delete Group")
	repo := NewTripRepository(db)

	trip := &models.Trip{GID: group.GID, UID: owner.UID}
	require.NoError(t, repo.Create(trip))

	ok, err := repo.Delete(trip.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(trip.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = repo.Delete(trip.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
