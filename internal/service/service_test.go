package service

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/trips-backend-go/internal/database"
	"github.com/wanderplan/trips-backend-go/internal/models"
	"github.com/wanderplan/trips-backend-go/internal/repository"
)

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
		PasswordHash: "x",
	}
	require.NoError(t, repository.NewUserRepository(db).Create(u))
	return u
}

func seedGroup(t *testing.T, db *database.DB, ownerUID, name string) *models.Group {
	t.Helper()

	g := &models.Group{
		GroupName: name,
		OwnerUID:  ownerUID,
		GroupType: models.GroupTypePlanned,
	}
	require.NoError(t, repository.NewGroupRepository(db).Create(g))
	return g
}
