package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/logger"
	"github.com/sbilibin2017/roommate-finder/internal/models"
)

//go:generate mockgen -source=locations.go -destination=locations_mock.go -package=services

var ErrLocationNotFound = errors.New("location not found")

// LocationStore reads and writes locations.
type LocationStore interface {
	Create(ctx context.Context, loc *models.LocationDB) (*models.LocationDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.LocationDB, error)
}

type LocationService struct {
	store LocationStore
}

func NewLocationService(store LocationStore) *LocationService {
	return &LocationService{store: store}
}

func (s *LocationService) Create(ctx context.Context, loc *models.LocationDB) (*models.LocationDB, error) {
	created, err := s.store.Create(ctx, loc)
	if err != nil {
		logger.Log.Errorw("failed to create location", "error", err)
		return nil, err
	}
	return created, nil
}

func (s *LocationService) Get(ctx context.Context, id uuid.UUID) (*models.LocationDB, error) {
	loc, err := s.store.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get location", "location_id", id, "error", err)
		return nil, err
	}
	if loc == nil {
		return nil, ErrLocationNotFound
	}
	return loc, nil
}
