package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/sbilibin2017/roommate-finder/internal/services"
)

//go:generate mockgen -source=rooms.go -destination=rooms_mock.go -package=handlers

// RoomViewGetter returns the aggregated view of a room.
type RoomViewGetter interface {
	GetView(ctx context.Context, id uuid.UUID) (*models.RoomView, error)
}

// RoomViewLister returns a page of aggregated rooms.
type RoomViewLister interface {
	ListViews(ctx context.Context, limit int) ([]models.RoomView, error)
}

// RoomCreator stores new rooms.
type RoomCreator interface {
	Create(ctx context.Context, room *models.RoomDB) (*models.RoomDB, error)
}

// RoomUpdater replaces room listing fields.
type RoomUpdater interface {
	Update(ctx context.Context, id uuid.UUID, room *models.RoomDB) (*models.RoomDB, error)
}

// RoomDeleter removes rooms.
type RoomDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoomRequest is the body of room create and replace calls.
// owner_id and location_id are only read on create.
// swagger:model RoomRequest
type RoomRequest struct {
	OwnerID    *uuid.UUID `json:"owner_id"`
	LocationID *uuid.UUID `json:"location_id"`

	// Title
	// required: true
	// default: Sunny room near the park
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description"`

	// One of private, shared, studio, entire. Defaults to private.
	RoomType string `json:"room_type" validate:"omitempty,oneof=private shared studio entire"`

	// Monthly rent
	// required: true
	// default: 950
	RentAmount    *float64 `json:"rent_amount" validate:"required,gte=0"`
	DepositAmount *float64 `json:"deposit_amount" validate:"omitempty,gte=0"`

	// ISO 4217 code. Defaults to USD.
	Currency string `json:"currency" validate:"omitempty,len=3"`

	AvailableFrom     *time.Time `json:"available_from"`
	AvailableUntil    *time.Time `json:"available_until"`
	TotalBedrooms     *int       `json:"total_bedrooms" validate:"omitempty,gte=0"`
	TotalBathrooms    *int       `json:"total_bathrooms" validate:"omitempty,gte=0"`
	RoomSizeSqft      *int       `json:"room_size_sqft" validate:"omitempty,gte=0"`
	IsFurnished       bool       `json:"is_furnished"`
	IsPrivateRoom     bool       `json:"is_private_room"`
	IsPrivateBathroom bool       `json:"is_private_bathroom"`

	// Defaults to true.
	IsActive *bool `json:"is_active"`
}

// Room returns the row described by the request with defaults applied.
func (req *RoomRequest) Room() *models.RoomDB {
	room := &models.RoomDB{
		OwnerID:           req.OwnerID,
		LocationID:        req.LocationID,
		Title:             req.Title,
		Description:       req.Description,
		RoomType:          req.RoomType,
		DepositAmount:     req.DepositAmount,
		Currency:          req.Currency,
		AvailableFrom:     req.AvailableFrom,
		AvailableUntil:    req.AvailableUntil,
		TotalBedrooms:     req.TotalBedrooms,
		TotalBathrooms:    req.TotalBathrooms,
		RoomSizeSqft:      req.RoomSizeSqft,
		IsFurnished:       req.IsFurnished,
		IsPrivateRoom:     req.IsPrivateRoom,
		IsPrivateBathroom: req.IsPrivateBathroom,
		IsActive:          true,
	}
	if req.RentAmount != nil {
		room.RentAmount = *req.RentAmount
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}
	if room.RoomType == "" {
		room.RoomType = models.RoomTypePrivate
	}
	if room.Currency == "" {
		room.Currency = "USD"
	}
	return room
}

const (
	msgRoomNotFound     = "Room not found"
	msgInvalidReference = "Owner or location not found"
)

// NewListRoomsHandler returns aggregated rooms, newest first.
// @Summary List rooms
// @Description Each room carries its location, amenities, photos and current residents.
// @Tags rooms
// @Produce json
// @Param limit query int false "Maximum number of rooms" default(100)
// @Success 200 {array} models.RoomView
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/rooms [get]
func NewListRoomsHandler(svc RoomViewLister, limits Limits) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r, limits)
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidLimit)
			return
		}

		rooms, err := svc.ListViews(r.Context(), limit)
		if err != nil {
			writeInternalError(w, "failed to list rooms", err)
			return
		}

		writeJSON(w, http.StatusOK, rooms)
	}
}

// NewGetRoomHandler returns the aggregated view of one room.
// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} models.RoomView
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Room not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/rooms/{id} [get]
func NewGetRoomHandler(svc RoomViewGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlUUID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		room, err := svc.GetView(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRoomNotFound):
				writeError(w, http.StatusNotFound, msgRoomNotFound)
			default:
				writeInternalError(w, "failed to get room", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, room)
	}
}

// NewCreateRoomHandler stores a new room.
// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Param roomRequest body handlers.RoomRequest true "Room"
// @Success 201 {object} models.RoomDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or unknown owner/location"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/rooms [post]
func NewCreateRoomHandler(svc RoomCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RoomRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		room, err := svc.Create(r.Context(), req.Room())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidReference):
				writeError(w, http.StatusBadRequest, msgInvalidReference)
			default:
				writeInternalError(w, "failed to create room", err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, room)
	}
}

// NewUpdateRoomHandler replaces the listing fields of a room.
// @Summary Replace room
// @Description Full replace: omitted optional fields are cleared. Owner and location are kept.
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param roomRequest body handlers.RoomRequest true "Room"
// @Success 200 {object} models.RoomDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Room not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/rooms/{id} [put]
func NewUpdateRoomHandler(svc RoomUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlUUID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		var req RoomRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		room, err := svc.Update(r.Context(), id, req.Room())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRoomNotFound):
				writeError(w, http.StatusNotFound, msgRoomNotFound)
			default:
				writeInternalError(w, "failed to update room", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, room)
	}
}

// NewDeleteRoomHandler removes a room with its amenities, photos and
// memberships. Deleting an unknown room succeeds.
// @Summary Delete room
// @Tags rooms
// @Param id path string true "Room ID"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/rooms/{id} [delete]
func NewDeleteRoomHandler(svc RoomDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlUUID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeInternalError(w, "failed to delete room", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
