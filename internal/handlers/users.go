package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/sbilibin2017/roommate-finder/internal/services"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserGetter returns a single user.
type UserGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// UserLister returns a page of users.
type UserLister interface {
	List(ctx context.Context, limit int) ([]models.User, error)
}

// UserUpdater replaces a user's profile.
type UserUpdater interface {
	Update(ctx context.Context, id uuid.UUID, profile models.UserProfile) (*models.User, error)
}

// UserDeleter removes a user.
type UserDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// UpdateUserRequest replaces every profile field of a user.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	FullName    string  `json:"full_name" validate:"required"`
	Age         int     `json:"age" validate:"required,gte=18,lte=100"`
	Gender      string  `json:"gender" validate:"required"`
	ProfileURL  *string `json:"profile_url"`
	PhoneNumber *string `json:"phone_number"`
	Bio         *string `json:"bio"`
}

const msgUserNotFound = "User not found"

// NewListUsersHandler returns users, newest first.
// @Summary List users
// @Tags users
// @Produce json
// @Param limit query int false "Maximum number of users" default(100)
// @Success 200 {array} models.User
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users [get]
func NewListUsersHandler(svc UserLister, limits Limits) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r, limits)
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidLimit)
			return
		}

		users, err := svc.List(r.Context(), limit)
		if err != nil {
			writeInternalError(w, "failed to list users", err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// NewGetUserHandler returns one user without credential material.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlUUID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, msgUserNotFound)
			default:
				writeInternalError(w, "failed to get user", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateUserHandler replaces a user's profile.
// @Summary Update user
// @Description Full replace: omitted optional fields are cleared.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param updateUserRequest body handlers.UpdateUserRequest true "New profile"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users/{id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlUUID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		var req UpdateUserRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := svc.Update(r.Context(), id, models.UserProfile{
			Email:       req.Email,
			FullName:    req.FullName,
			Age:         req.Age,
			Gender:      req.Gender,
			ProfileURL:  nullIfEmpty(req.ProfileURL),
			PhoneNumber: nullIfEmpty(req.PhoneNumber),
			Bio:         nullIfEmpty(req.Bio),
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, msgUserNotFound)
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeError(w, http.StatusConflict, msgEmailTaken)
			default:
				writeInternalError(w, "failed to update user", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteUserHandler removes a user and their memberships.
// @Summary Delete user
// @Tags users
// @Param id path string true "User ID"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlUUID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, msgUserNotFound)
			default:
				writeInternalError(w, "failed to delete user", err)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
