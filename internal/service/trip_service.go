package service

import (
	"context"
	"fmt"

	"github.com/wanderplan/trips-backend-go/internal/landmarks"
	"github.com/wanderplan/trips-backend-go/internal/models"
	"github.com/wanderplan/trips-backend-go/internal/repository"
)

// TripService handles business logic for trips
type TripService struct {
	repo      *repository.TripRepository
	generator *landmarks.Generator
}

// NewTripService creates a new trip service
func NewTripService(repo *repository.TripRepository, generator *landmarks.Generator) *TripService {
	return &TripService{repo: repo, generator: generator}
}

// GenerateRequest carries the parameters of one trip-generation call
type GenerateRequest struct {
	GID             int64   `json:"gid" form:"gid" binding:"required"`
	UID             string  `json:"uid" form:"uid" binding:"required"`
	LocationLat     float64 `json:"location_lat" form:"location_lat"`
	LocationLong    float64 `json:"location_long" form:"location_long"`
	LandmarkTypes   string  `json:"landmark_types" form:"landmark_types"`
	MaxDistance     float64 `json:"max_distance" form:"max_distance"`
	NumDestinations int     `json:"num_destinations" form:"num_destinations"`
	LandmarkCounts  string  `json:"landmark_counts" form:"landmark_counts"`
}

// GenerateTrip queries the place provider for landmarks and then persists the
// trip in a single write. Provider failures only shrink the landmark list; the
// trip row is never written before the landmarks are known.
func (s *TripService) GenerateTrip(ctx context.Context, req GenerateRequest) (*models.Trip, error) {
	if req.MaxDistance <= 0 {
		req.MaxDistance = 50.0
	}
	if req.LandmarkCounts == "" {
		req.LandmarkCounts = "{}"
	}

	found := s.generator.Generate(ctx,
		req.LocationLat, req.LocationLong,
		req.LandmarkTypes, req.MaxDistance,
		req.NumDestinations, req.LandmarkCounts,
	)

	trip := &models.Trip{
		GID:             req.GID,
		UID:             req.UID,
		LocationLat:     req.LocationLat,
		LocationLong:    req.LocationLong,
		NumDestinations: req.NumDestinations,
		Landmarks:       found,
	}
	if err := s.repo.Create(trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// CreateCustomTrip persists a caller-supplied landmark list verbatim. The
// trip's center is taken from the first landmark.
func (s *TripService) CreateCustomTrip(gid int64, uid string, rawLandmarks []map[string]interface{}) (*models.Trip, error) {
	if len(rawLandmarks) == 0 {
		return nil, fmt.Errorf("a custom trip needs at least one landmark")
	}

	stops := normalizeLandmarks(rawLandmarks)

	trip := &models.Trip{
		GID:             gid,
		UID:             uid,
		LocationLat:     stops[0].Latitude,
		LocationLong:    stops[0].Longitude,
		NumDestinations: len(stops),
		Landmarks:       stops,
	}
	if err := s.repo.Create(trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// GetTrip retrieves a trip; nil when not found
func (s *TripService) GetTrip(id int64) (*models.Trip, error) {
	return s.repo.GetByID(id)
}

// ListByGroup retrieves a group's trips
func (s *TripService) ListByGroup(gid int64) ([]models.Trip, error) {
	return s.repo.ListByGroup(gid)
}

// ListByUser retrieves a user's trips
func (s *TripService) ListByUser(uid string) ([]models.Trip, error) {
	return s.repo.ListByUser(uid)
}

// ReplaceLandmarks overwrites a trip's whole landmark list. Items arrive as
// loosely shaped maps and are normalized before storage.
func (s *TripService) ReplaceLandmarks(id int64, rawLandmarks []map[string]interface{}) (bool, error) {
	return s.repo.ReplaceLandmarks(id, normalizeLandmarks(rawLandmarks))
}

// DeleteTrip removes a trip
func (s *TripService) DeleteTrip(id int64) (bool, error) {
	return s.repo.Delete(id)
}

func normalizeLandmarks(raw []map[string]interface{}) []models.Landmark {
	stops := make([]models.Landmark, 0, len(raw))
	for _, item := range raw {
		stops = append(stops, models.LandmarkFromMap(item))
	}
	return stops
}
