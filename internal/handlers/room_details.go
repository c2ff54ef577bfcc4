package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/sbilibin2017/roommate-finder/internal/services"
)

//go:generate mockgen -source=room_details.go -destination=room_details_mock.go -package=handlers

// AmenityReplacer swaps the amenity list of a room.
type AmenityReplacer interface {
	ReplaceAmenities(ctx context.Context, id uuid.UUID, amenities []string) error
}

// PhotoAdder appends a photo to a room.
type PhotoAdder interface {
	AddPhoto(ctx context.Context, id uuid.UUID, photo models.RoomPhoto) (*models.RoomPhoto, error)
}

// MemberSetter records room membership.
type MemberSetter interface {
	SetMember(ctx context.Context, roomID, userID uuid.UUID, currentResident bool) error
}

// AmenitiesRequest replaces the amenities of a room.
// swagger:model AmenitiesRequest
type AmenitiesRequest struct {
	// Amenity names; an empty list clears them
	// required: true
	Amenities []string `json:"amenities" validate:"required,dive,required,max=100"`
}

// PhotoRequest adds a photo to a room.
// swagger:model PhotoRequest
type PhotoRequest struct {
	// required: true
	// default: https://example.com/room.jpg
	PhotoURL     string  `json:"photo_url" validate:"required"`
	Caption      *string `json:"caption"`
	DisplayOrder int     `json:"display_order" validate:"gte=0"`
}

// MemberRequest sets whether a user lives in a room.
// swagger:model MemberRequest
type MemberRequest struct {
	// required: true
	IsCurrentResident *bool `json:"is_current_resident" validate:"required"`
}

const msgMemberReference = "Room or user not found"

// NewReplaceAmenitiesHandler swaps the amenity list of a room.
// @Summary Replace room amenities
// @Tags rooms
// @Accept json
// @Param id path string true "Room ID"
// @Param amenitiesRequest body handlers.AmenitiesRequest true "Amenities"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Room not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/rooms/{id}/amenities [put]
func NewReplaceAmenitiesHandler(svc AmenityReplacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlUUID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		var req AmenitiesRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.ReplaceAmenities(r.Context(), id, req.Amenities); err != nil {
			switch {
			case errors.Is(err, services.ErrRoomNotFound):
				writeError(w, http.StatusNotFound, msgRoomNotFound)
			default:
				writeInternalError(w, "failed to replace amenities", err)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewAddPhotoHandler appends a photo to a room.
// @Summary Add room photo
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param photoRequest body handlers.PhotoRequest true "Photo"
// @Success 201 {object} models.RoomPhoto
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Room not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/rooms/{id}/photos [post]
func NewAddPhotoHandler(svc PhotoAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlUUID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		var req PhotoRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		photo, err := svc.AddPhoto(r.Context(), id, models.RoomPhoto{
			PhotoURL:     req.PhotoURL,
			Caption:      nullIfEmpty(req.Caption),
			DisplayOrder: req.DisplayOrder,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRoomNotFound):
				writeError(w, http.StatusNotFound, msgRoomNotFound)
			default:
				writeInternalError(w, "failed to add photo", err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, photo)
	}
}

// NewSetMemberHandler adds a user to a room or updates their resident flag.
// @Summary Set room membership
// @Tags rooms
// @Accept json
// @Param id path string true "Room ID"
// @Param userID path string true "User ID"
// @Param memberRequest body handlers.MemberRequest true "Membership"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Room or user not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/rooms/{id}/members/{userID} [put]
func NewSetMemberHandler(svc MemberSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID, err := urlUUID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		userID, err := urlUUID(r, "userID")
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		var req MemberRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.SetMember(r.Context(), roomID, userID, *req.IsCurrentResident); err != nil {
			switch {
			case errors.Is(err, services.ErrMembershipReference):
				writeError(w, http.StatusNotFound, msgMemberReference)
			default:
				writeInternalError(w, "failed to set member", err)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
