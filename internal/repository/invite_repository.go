package repository

import (
	"database/sql"
	"fmt"

	"github.com/wanderplan/trips-backend-go/internal/database"
	"github.com/wanderplan/trips-backend-go/internal/models"
)

// InviteRepository handles database operations for invites
type InviteRepository struct {
	db *database.DB
}

// NewInviteRepository creates a new invite repository
func NewInviteRepository(db *database.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

// Create inserts a new pending invite
func (r *InviteRepository) Create(i *models.Invite) error {
	query := `INSERT INTO invites (uid, gid, invited_by, role, status) VALUES (?, ?, ?, ?, ?)`

	res, err := r.db.Exec(query, i.UID, i.GID, i.InvitedBy, i.Role, models.InviteStatusPending)
	if err != nil {
		return fmt.Errorf("failed to create invite: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read invite id: %w", err)
	}
	i.ID = id
	i.Status = models.InviteStatusPending
	return nil
}

// GetByID retrieves an invite; returns nil when not found
func (r *InviteRepository) GetByID(id int64) (*models.Invite, error) {
	query := `SELECT id, uid, gid, invited_by, role, status, created_at FROM invites WHERE id = ?`

	var i models.Invite
	err := r.db.QueryRow(query, id).Scan(&i.ID, &i.UID, &i.GID, &i.InvitedBy, &i.Role, &i.Status, &i.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return &i, nil
}

// ListByUser retrieves invites addressed to a user
func (r *InviteRepository) ListByUser(uid string) ([]models.Invite, error) {
	query := `SELECT id, uid, gid, invited_by, role, status, created_at
		FROM invites WHERE uid = ? ORDER BY created_at DESC`

	rows, err := r.db.Query(query, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to query invites by user: %w", err)
	}
	defer rows.Close()

	return scanInvites(rows)
}

// ListByGroup retrieves invites for a group
func (r *InviteRepository) ListByGroup(gid int64) ([]models.Invite, error) {
	query := `SELECT id, uid, gid, invited_by, role, status, created_at
		FROM invites WHERE gid = ? ORDER BY created_at DESC`

	rows, err := r.db.Query(query, gid)
	if err != nil {
		return nil, fmt.Errorf("failed to query invites by group: %w", err)
	}
	defer rows.Close()

	return scanInvites(rows)
}

func scanInvites(rows *sql.Rows) ([]models.Invite, error) {
	var invites []models.Invite
	for rows.Next() {
		var i models.Invite
		if err := rows.Scan(&i.ID, &i.UID, &i.GID, &i.InvitedBy, &i.Role, &i.Status, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, i)
	}
	return invites, rows.Err()
}

// UpdateStatus transitions an invite; reports whether a row matched
func (r *InviteRepository) UpdateStatus(id int64, status string) (bool, error) {
	res, err := r.db.Exec("UPDATE invites SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return false, fmt.Errorf("failed to update invite status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return affected > 0, nil
}

// Delete removes an invite; reports whether a row matched
func (r *InviteRepository) Delete(id int64) (bool, error) {
	res, err := r.db.Exec("DELETE FROM invites WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete invite: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}
