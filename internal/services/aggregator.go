package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=aggregator.go -destination=aggregator_mock.go -package=services

// RoomDetailsReader runs the dependent reads of a room view.
type RoomDetailsReader interface {
	GetAmenities(ctx context.Context, roomID uuid.UUID) ([]string, error)
	GetPhotos(ctx context.Context, roomID uuid.UUID) ([]models.RoomPhoto, error)
	GetRoommates(ctx context.Context, roomID uuid.UUID) ([]models.Roommate, error)
}

// DefaultAggregateConcurrency bounds how many rooms of a page are
// aggregated at once.
const DefaultAggregateConcurrency = 8

// RoomAggregator merges a room row with its location, amenities, photos
// and current residents.
//
// The three dependent reads run concurrently. The first failing branch
// cancels the others and fails the whole view; no partial view is ever
// returned.
type RoomAggregator struct {
	details     RoomDetailsReader
	concurrency int
}

// NewRoomAggregator creates an aggregator. Non-positive concurrency falls
// back to DefaultAggregateConcurrency.
func NewRoomAggregator(details RoomDetailsReader, concurrency int) *RoomAggregator {
	if concurrency <= 0 {
		concurrency = DefaultAggregateConcurrency
	}
	return &RoomAggregator{details: details, concurrency: concurrency}
}

// Aggregate builds the view for one joined room row.
func (a *RoomAggregator) Aggregate(ctx context.Context, row *models.RoomLocationRow) (*models.RoomView, error) {
	var (
		amenities []string
		photos    []models.RoomPhoto
		roommates []models.Roommate
	)

	id := row.RoomID
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if amenities, err = a.details.GetAmenities(gctx, id); err != nil {
			return fmt.Errorf("amenities: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if photos, err = a.details.GetPhotos(gctx, id); err != nil {
			return fmt.Errorf("photos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if roommates, err = a.details.GetRoommates(gctx, id); err != nil {
			return fmt.Errorf("roommates: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("aggregate room %s: %w", id, err)
	}

	if amenities == nil {
		amenities = []string{}
	}
	if photos == nil {
		photos = []models.RoomPhoto{}
	}
	if roommates == nil {
		roommates = []models.Roommate{}
	}

	return &models.RoomView{
		RoomDB:    row.RoomDB,
		Location:  row.Location(),
		Amenities: amenities,
		Photos:    photos,
		Roommates: roommates,
	}, nil
}

// AggregateAll builds views for a page of rows, preserving row order.
// Any row failure fails the whole page.
func (a *RoomAggregator) AggregateAll(ctx context.Context, rows []models.RoomLocationRow) ([]models.RoomView, error) {
	views := make([]models.RoomView, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i := range rows {
		g.Go(func() error {
			view, err := a.Aggregate(gctx, &rows[i])
			if err != nil {
				return err
			}
			views[i] = *view
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}
