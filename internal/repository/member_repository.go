package repository

import (
	"database/sql"
	"fmt"

	"github.com/wanderplan/trips-backend-go/internal/database"
	"github.com/wanderplan/trips-backend-go/internal/models"
)

// MemberRepository handles database operations for group memberships
type MemberRepository struct {
	db *database.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *database.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create inserts a membership row
func (r *MemberRepository) Create(m *models.Member) error {
	query := `INSERT INTO members (uid, gid, role) VALUES (?, ?, ?)`

	_, err := r.db.Exec(query, m.UID, m.GID, m.Role)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

// Get retrieves one membership; returns nil when not found
func (r *MemberRepository) Get(gid int64, uid string) (*models.Member, error) {
	query := `SELECT uid, gid, role, joined_at FROM members WHERE gid = ? AND uid = ?`

	var m models.Member
	err := r.db.QueryRow(query, gid, uid).Scan(&m.UID, &m.GID, &m.Role, &m.JoinedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &m, nil
}

// ListByGroup retrieves all members of a group
func (r *MemberRepository) ListByGroup(gid int64) ([]models.Member, error) {
	query := `SELECT uid, gid, role, joined_at FROM members WHERE gid = ? ORDER BY joined_at`

	rows, err := r.db.Query(query, gid)
	if err != nil {
		return nil, fmt.Errorf("failed to query members by group: %w", err)
	}
	defer rows.Close()

	return scanMembers(rows)
}

// ListByUser retrieves all memberships of a user
func (r *MemberRepository) ListByUser(uid string) ([]models.Member, error) {
	query := `SELECT uid, gid, role, joined_at FROM members WHERE uid = ? ORDER BY joined_at`

	rows, err := r.db.Query(query, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to query members by user: %w", err)
	}
	defer rows.Close()

	return scanMembers(rows)
}

func scanMembers(rows *sql.Rows) ([]models.Member, error) {
	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.UID, &m.GID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// UpdateRole changes a member's role; reports whether a row matched
func (r *MemberRepository) UpdateRole(gid int64, uid, role string) (bool, error) {
	res, err := r.db.Exec("UPDATE members SET role = ? WHERE gid = ? AND uid = ?", role, gid, uid)
	if err != nil {
		return false, fmt.Errorf("failed to update member role: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a membership; reports whether a row matched
func (r *MemberRepository) Delete(gid int64, uid string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM members WHERE gid = ? AND uid = ?", gid, uid)
	if err != nil {
		return false, fmt.Errorf("failed to delete member: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}
