package repository

import (
	"database/sql"
	"fmt"

	"github.com/wanderplan/trips-backend-go/internal/database"
	"github.com/wanderplan/trips-backend-go/internal/models"
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *database.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *database.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create inserts a new group and its owner membership in one transaction
func (r *GroupRepository) Create(g *models.Group) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`INSERT INTO groups (group_name, owner_uid, location_lat, location_long, group_type)
			VALUES (?, ?, ?, ?, ?)`,
			g.GroupName, g.OwnerUID, g.LocationLat, g.LocationLong, g.GroupType,
		)
		if err != nil {
			return fmt.Errorf("failed to create group: %w", err)
		}

		gid, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read group id: %w", err)
		}
		g.GID = gid

		_, err = tx.Exec(
			`INSERT INTO members (uid, gid, role) VALUES (?, ?, ?)`,
			g.OwnerUID, gid, models.RoleOwner,
		)
		if err != nil {
			return fmt.Errorf("failed to add owner membership: %w", err)
		}
		return nil
	})
}

// GetByGID retrieves a group by id; returns nil when not found
func (r *GroupRepository) GetByGID(gid int64) (*models.Group, error) {
	query := `SELECT gid, group_name, owner_uid, location_lat, location_long, group_type, created_at
		FROM groups WHERE gid = ?`

	var g models.Group
	err := r.db.QueryRow(query, gid).Scan(
		&g.GID, &g.GroupName, &g.OwnerUID, &g.LocationLat, &g.LocationLong, &g.GroupType, &g.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return &g, nil
}

// List retrieves groups with skip/limit pagination
func (r *GroupRepository) List(skip, limit int) ([]models.Group, error) {
	if limit < 1 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}

	query := `SELECT gid, group_name, owner_uid, location_lat, location_long, group_type, created_at
		FROM groups ORDER BY gid LIMIT ? OFFSET ?`

	rows, err := r.db.Query(query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	return scanGroups(rows)
}

// ListByUser retrieves the groups a user belongs to
func (r *GroupRepository) ListByUser(uid string) ([]models.Group, error) {
	query := `SELECT g.gid, g.group_name, g.owner_uid, g.location_lat, g.location_long, g.group_type, g.created_at
		FROM groups g
		JOIN members m ON m.gid = g.gid
		WHERE m.uid = ?
		ORDER BY g.gid`

	rows, err := r.db.Query(query, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups for user: %w", err)
	}
	defer rows.Close()

	return scanGroups(rows)
}

func scanGroups(rows *sql.Rows) ([]models.Group, error) {
	var groups []models.Group
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.GID, &g.GroupName, &g.OwnerUID, &g.LocationLat, &g.LocationLong, &g.GroupType, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// Update replaces the mutable group fields; reports whether a row matched
func (r *GroupRepository) Update(gid int64, upd models.GroupUpdate) (bool, error) {
	query := `UPDATE groups SET group_name = ?, location_lat = ?, location_long = ?, group_type = ? WHERE gid = ?`

	res, err := r.db.Exec(query, upd.GroupName, upd.LocationLat, upd.LocationLong, upd.GroupType, gid)
	if err != nil {
		return false, fmt.Errorf("failed to update group: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a group and its memberships; reports whether the group existed
func (r *GroupRepository) Delete(gid int64) (bool, error) {
	var existed bool
	err := r.db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM members WHERE gid = ?", gid); err != nil {
			return fmt.Errorf("failed to delete group members: %w", err)
		}

		res, err := tx.Exec("DELETE FROM groups WHERE gid = ?", gid)
		if err != nil {
			return fmt.Errorf("failed to delete group: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read delete result: %w", err)
		}
		existed = affected > 0
		return nil
	})

	return existed, err
}
