package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/sbilibin2017/roommate-finder/internal/services"
)

//go:generate mockgen -source=locations.go -destination=locations_mock.go -package=handlers

// LocationCreator stores locations.
type LocationCreator interface {
	Create(ctx context.Context, loc *models.LocationDB) (*models.LocationDB, error)
}

// LocationGetter returns one location.
type LocationGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.LocationDB, error)
}

// LocationRequest is the body of location creation.
// swagger:model LocationRequest
type LocationRequest struct {
	StreetAddress string  `json:"street_address" validate:"required"`
	City          string  `json:"city" validate:"required"`
	State         *string `json:"state"`
	PostalCode    *string `json:"postal_code"`
	Country       string  `json:"country" validate:"required"`
}

const msgLocationNotFound = "Location not found"

// NewCreateLocationHandler stores a location rooms can point at.
// @Summary Create location
// @Tags locations
// @Accept json
// @Produce json
// @Param locationRequest body handlers.LocationRequest true "Location"
// @Success 201 {object} models.LocationDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/locations [post]
func NewCreateLocationHandler(svc LocationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LocationRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		loc, err := svc.Create(r.Context(), &models.LocationDB{
			StreetAddress: req.StreetAddress,
			City:          req.City,
			State:         nullIfEmpty(req.State),
			PostalCode:    nullIfEmpty(req.PostalCode),
			Country:       req.Country,
		})
		if err != nil {
			writeInternalError(w, "failed to create location", err)
			return
		}

		writeJSON(w, http.StatusCreated, loc)
	}
}

// NewGetLocationHandler returns one location.
// @Summary Get location
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} models.LocationDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Location not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/locations/{id} [get]
func NewGetLocationHandler(svc LocationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlUUID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		loc, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrLocationNotFound):
				writeError(w, http.StatusNotFound, msgLocationNotFound)
			default:
				writeInternalError(w, "failed to get location", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, loc)
	}
}
