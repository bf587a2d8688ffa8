package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wanderplan/trips-backend-go/internal/database"
	"github.com/wanderplan/trips-backend-go/internal/models"
)

// TripRepository handles database operations for trips. The landmark list is
// stored as a JSON column and always replaced as a whole.
type TripRepository struct {
	db *database.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *database.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create inserts a trip together with its landmark list and fills in its id
func (r *TripRepository) Create(t *models.Trip) error {
	landmarksJSON, err := marshalLandmarks(t.Landmarks)
	if err != nil {
		return err
	}

	query := `INSERT INTO trips (gid, uid, location_lat, location_long, num_destinations, landmarks_json)
		VALUES (?, ?, ?, ?, ?, ?)`

	res, err := r.db.Exec(query, t.GID, t.UID, t.LocationLat, t.LocationLong, t.NumDestinations, landmarksJSON)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read trip id: %w", err)
	}
	t.ID = id
	return nil
}

// GetByID retrieves a trip with its landmarks; returns nil when not found
func (r *TripRepository) GetByID(id int64) (*models.Trip, error) {
	query := `SELECT id, gid, uid, location_lat, location_long, num_destinations, landmarks_json, created_at, updated_at
		FROM trips WHERE id = ?`

	var t models.Trip
	var landmarksJSON string
	err := r.db.QueryRow(query, id).Scan(
		&t.ID, &t.GID, &t.UID, &t.LocationLat, &t.LocationLong, &t.NumDestinations,
		&landmarksJSON, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	if err := json.Unmarshal([]byte(landmarksJSON), &t.Landmarks); err != nil {
		return nil, fmt.Errorf("failed to decode trip landmarks: %w", err)
	}

	return &t, nil
}

// ListByGroup retrieves a group's trips, newest first
func (r *TripRepository) ListByGroup(gid int64) ([]models.Trip, error) {
	return r.list("gid = ?", gid)
}

// ListByUser retrieves a user's trips, newest first
func (r *TripRepository) ListByUser(uid string) ([]models.Trip, error) {
	return r.list("uid = ?", uid)
}

func (r *TripRepository) list(condition string, arg interface{}) ([]models.Trip, error) {
	query := `SELECT id, gid, uid, location_lat, location_long, num_destinations, landmarks_json, created_at, updated_at
		FROM trips WHERE ` + condition + ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		var landmarksJSON string
		err := rows.Scan(
			&t.ID, &t.GID, &t.UID, &t.LocationLat, &t.LocationLong, &t.NumDestinations,
			&landmarksJSON, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		if err := json.Unmarshal([]byte(landmarksJSON), &t.Landmarks); err != nil {
			return nil, fmt.Errorf("failed to decode trip landmarks: %w", err)
		}
		trips = append(trips, t)
	}

	return trips, rows.Err()
}

// ReplaceLandmarks overwrites the whole landmark list; reports whether the
// trip existed
func (r *TripRepository) ReplaceLandmarks(id int64, landmarks []models.Landmark) (bool, error) {
	landmarksJSON, err := marshalLandmarks(landmarks)
	if err != nil {
		return false, err
	}

	query := `UPDATE trips SET landmarks_json = ?, num_destinations = ?, updated_at = ? WHERE id = ?`

	res, err := r.db.Exec(query, landmarksJSON, len(landmarks), time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("failed to update trip landmarks: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a trip; reports whether a row matched
func (r *TripRepository) Delete(id int64) (bool, error) {
	res, err := r.db.Exec("DELETE FROM trips WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete trip: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}

func marshalLandmarks(landmarks []models.Landmark) (string, error) {
	if landmarks == nil {
		landmarks = []models.Landmark{}
	}
	data, err := json.Marshal(landmarks)
	if err != nil {
		return "", fmt.Errorf("failed to encode landmarks: %w", err)
	}
	return string(data), nil
}
