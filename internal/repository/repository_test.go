package repository

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/trips-backend-go/internal/database"
	"github.com/wanderplan/trips-backend-go/internal/models"
)

// newTestDB opens a migrated sqlite database backed by a temp file. A file is
// used instead of :memory: because the connection pool would otherwise hand
// each connection its own empty in-memory database.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func seedUser(t *testing.T, db *database.DB, email string) *models.User {
	t.Helper()

	u := &models.User{
		UID:          uuid.NewString(),
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PhoneNumber:  "555-0100",
		PasswordHash: "x",
	}
	require.NoError(t, NewUserRepository(db).Create(u))
	return u
}

func seedGroup(t *testing.T, db *database.DB, ownerUID, name string) *models.Group {
	t.Helper()

	g := &models.Group{
		GroupName:    name,
		OwnerUID:     ownerUID,
		LocationLat:  40.0,
		LocationLong: -74.0,
		GroupType:    models.GroupTypePlanned,
	}
	require.NoError(t, NewGroupRepository(db).Create(g))
	return g
}
