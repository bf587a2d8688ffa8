package repository

import (
	"database/sql"
	"fmt"

	"github.com/wanderplan/trips-backend-go/internal/database"
	"github.com/wanderplan/trips-backend-go/internal/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user
func (r *UserRepository) Create(u *models.User) error {
	query := `INSERT INTO users (uid, first_name, last_name, email, phone_number, password_hash)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query, u.UID, u.FirstName, u.LastName, u.Email, u.PhoneNumber, u.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUID retrieves a user by uid; returns nil when not found
func (r *UserRepository) GetByUID(uid string) (*models.User, error) {
	query := `SELECT uid, first_name, last_name, email, phone_number, password_hash, created_at
		FROM users WHERE uid = ?`

	var u models.User
	err := r.db.QueryRow(query, uid).Scan(
		&u.UID, &u.FirstName, &u.LastName, &u.Email, &u.PhoneNumber, &u.PasswordHash, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// GetByEmail retrieves a user by email address; returns nil when not found
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	query := `SELECT uid, first_name, last_name, email, phone_number, password_hash, created_at
		FROM users WHERE email = ?`

	var u models.User
	err := r.db.QueryRow(query, email).Scan(
		&u.UID, &u.FirstName, &u.LastName, &u.Email, &u.PhoneNumber, &u.PasswordHash, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &u, nil
}

// List retrieves users with skip/limit pagination
func (r *UserRepository) List(skip, limit int) ([]models.User, error) {
	if limit < 1 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}

	query := `SELECT uid, first_name, last_name, email, phone_number, password_hash, created_at
		FROM users ORDER BY created_at LIMIT ? OFFSET ?`

	rows, err := r.db.Query(query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UID, &u.FirstName, &u.LastName, &u.Email, &u.PhoneNumber, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Update replaces the mutable profile fields; reports whether a row matched
func (r *UserRepository) Update(uid string, upd models.UserUpdate) (bool, error) {
	query := `UPDATE users SET first_name = ?, last_name = ?, phone_number = ? WHERE uid = ?`

	res, err := r.db.Exec(query, upd.FirstName, upd.LastName, upd.PhoneNumber, uid)
	if err != nil {
		return false, fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a user; reports whether a row matched
func (r *UserRepository) Delete(uid string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM users WHERE uid = ?", uid)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}
