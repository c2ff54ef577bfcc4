package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/logger"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/sbilibin2017/roommate-finder/internal/repositories"
)

//go:generate mockgen -source=rooms.go -destination=rooms_mock.go -package=services

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrInvalidReference    = errors.New("owner or location does not exist")
	ErrMembershipReference = errors.New("room or user not found")
)

// RoomReader retrieves joined room rows and their dependent data.
type RoomReader interface {
	RoomDetailsReader
	GetByID(ctx context.Context, id uuid.UUID) (*models.RoomLocationRow, error)
	List(ctx context.Context, limit int) ([]models.RoomLocationRow, error)
}

// RoomWriter persists rooms and their dependent rows.
type RoomWriter interface {
	Create(ctx context.Context, room *models.RoomDB) (*models.RoomDB, error)
	Update(ctx context.Context, id uuid.UUID, room *models.RoomDB) (*models.RoomDB, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceAmenities(ctx context.Context, roomID uuid.UUID, amenities []string) (bool, error)
	AddPhoto(ctx context.Context, roomID uuid.UUID, photo models.RoomPhoto) (*models.RoomPhoto, error)
	SetMember(ctx context.Context, roomID, userID uuid.UUID, currentResident bool) error
}

// RoomViewCache caches aggregated room views. Delete bumps the room version;
// SetIfVersion stores a view only if the version has not moved since it was read.
type RoomViewCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.RoomView, error)
	Version(ctx context.Context, id uuid.UUID) (int64, error)
	SetIfVersion(ctx context.Context, view *models.RoomView, version int64) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoomService serves room listings.
type RoomService struct {
	reader     RoomReader
	writer     RoomWriter
	cache      RoomViewCache
	aggregator *RoomAggregator
	events     Publisher
}

// NewRoomService creates a RoomService. cache may be nil.
func NewRoomService(
	reader RoomReader,
	writer RoomWriter,
	cache RoomViewCache,
	events Publisher,
	concurrency int,
) *RoomService {
	return &RoomService{
		reader:     reader,
		writer:     writer,
		cache:      cache,
		aggregator: NewRoomAggregator(reader, concurrency),
		events:     events,
	}
}

// GetView returns the aggregated view of a room.
func (s *RoomService) GetView(ctx context.Context, id uuid.UUID) (*models.RoomView, error) {
	cacheable := s.cache != nil
	var version int64
	if s.cache != nil {
		view, err := s.cache.Get(ctx, id)
		if err != nil {
			logger.Log.Warnw("room view cache read failed", "room_id", id, "error", err)
		} else if view != nil {
			return view, nil
		}

		// read before the row so a write racing this read moves it
		version, err = s.cache.Version(ctx, id)
		if err != nil {
			logger.Log.Warnw("room view version read failed", "room_id", id, "error", err)
			cacheable = false
		}
	}

	row, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get room", "room_id", id, "error", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrRoomNotFound
	}

	view, err := s.aggregator.Aggregate(ctx, row)
	if err != nil {
		logger.Log.Errorw("failed to aggregate room", "room_id", id, "error", err)
		return nil, err
	}

	if cacheable {
		stored, err := s.cache.SetIfVersion(ctx, view, version)
		if err != nil {
			logger.Log.Warnw("room view cache write failed", "room_id", id, "error", err)
		} else if !stored {
			logger.Log.Infow("room changed while building view, not cached", "room_id", id)
		}
	}

	return view, nil
}

// ListViews returns up to limit aggregated rooms, newest first.
func (s *RoomService) ListViews(ctx context.Context, limit int) ([]models.RoomView, error) {
	rows, err := s.reader.List(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to list rooms", "limit", limit, "error", err)
		return nil, err
	}

	views, err := s.aggregator.AggregateAll(ctx, rows)
	if err != nil {
		logger.Log.Errorw("failed to aggregate rooms", "limit", limit, "error", err)
		return nil, err
	}
	return views, nil
}

// Create stores a new room.
func (s *RoomService) Create(ctx context.Context, room *models.RoomDB) (*models.RoomDB, error) {
	created, err := s.writer.Create(ctx, room)
	if errors.Is(err, repositories.ErrForeignKey) {
		return nil, ErrInvalidReference
	}
	if err != nil {
		logger.Log.Errorw("failed to create room", "error", err)
		return nil, err
	}

	s.events.Publish(ctx, models.EventRoomCreated, created.RoomID, created)
	return created, nil
}

// Update replaces the listing fields of a room.
func (s *RoomService) Update(ctx context.Context, id uuid.UUID, room *models.RoomDB) (*models.RoomDB, error) {
	updated, err := s.writer.Update(ctx, id, room)
	if err != nil {
		logger.Log.Errorw("failed to update room", "room_id", id, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrRoomNotFound
	}

	s.evict(ctx, id)
	s.events.Publish(ctx, models.EventRoomUpdated, id, updated)
	return updated, nil
}

// Delete removes a room and its dependent rows. Missing rooms are ignored.
func (s *RoomService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete room", "room_id", id, "error", err)
		return err
	}

	s.evict(ctx, id)
	s.events.Publish(ctx, models.EventRoomDeleted, id, nil)
	return nil
}

// ReplaceAmenities swaps the amenity list of a room.
func (s *RoomService) ReplaceAmenities(ctx context.Context, id uuid.UUID, amenities []string) error {
	found, err := s.writer.ReplaceAmenities(ctx, id, amenities)
	if err != nil {
		logger.Log.Errorw("failed to replace amenities", "room_id", id, "error", err)
		return err
	}
	if !found {
		return ErrRoomNotFound
	}

	s.evict(ctx, id)
	return nil
}

// AddPhoto appends a photo to a room.
func (s *RoomService) AddPhoto(ctx context.Context, id uuid.UUID, photo models.RoomPhoto) (*models.RoomPhoto, error) {
	created, err := s.writer.AddPhoto(ctx, id, photo)
	if errors.Is(err, repositories.ErrForeignKey) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to add photo", "room_id", id, "error", err)
		return nil, err
	}

	s.evict(ctx, id)
	return created, nil
}

// SetMember records whether a user currently lives in a room.
func (s *RoomService) SetMember(ctx context.Context, roomID, userID uuid.UUID, currentResident bool) error {
	err := s.writer.SetMember(ctx, roomID, userID, currentResident)
	if errors.Is(err, repositories.ErrForeignKey) {
		return ErrMembershipReference
	}
	if err != nil {
		logger.Log.Errorw("failed to set member", "room_id", roomID, "user_id", userID, "error", err)
		return err
	}

	s.evict(ctx, roomID)
	return nil
}

func (s *RoomService) evict(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		logger.Log.Warnw("room view cache eviction failed", "room_id", id, "error", err)
	}
}
