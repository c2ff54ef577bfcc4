package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/sbilibin2017/roommate-finder/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, password string, profile models.UserProfile) (*models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password, at most 72 bytes
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`

	// Full name
	// required: true
	// default: John Doe
	FullName string `json:"full_name" validate:"required"`

	// Age, 18 to 100 inclusive
	// required: true
	// default: 25
	Age int `json:"age" validate:"required,gte=18,lte=100"`

	// Gender
	// required: true
	// default: male
	Gender string `json:"gender" validate:"required"`

	ProfileURL  *string `json:"profile_url"`
	PhoneNumber *string `json:"phone_number"`
	Bio         *string `json:"bio"`
}

const (
	msgRegisterMissing = "Missing required fields: email, password, full_name, age, gender"
	msgAgeRange        = "Age must be between 18 and 100"
	msgEmailTaken      = "Email already registered"
	msgPasswordTooLong = "Password must be at most 72 bytes"
)

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Email must be unique. Password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} models.User "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields, age out of range or password too long"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if err := validate.Struct(&req); err != nil {
			switch {
			case hasRequiredError(err):
				writeError(w, http.StatusBadRequest, msgRegisterMissing)
			case hasFieldError(err, "age"):
				writeError(w, http.StatusBadRequest, msgAgeRange)
			default:
				writeError(w, http.StatusBadRequest, validationMessage(err))
			}
			return
		}
		if len(req.Password) > services.MaxPasswordBytes {
			writeError(w, http.StatusBadRequest, msgPasswordTooLong)
			return
		}

		user, err := svc.Register(r.Context(), req.Password, models.UserProfile{
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
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeError(w, http.StatusConflict, msgEmailTaken)
			case errors.Is(err, services.ErrPasswordTooLong):
				writeError(w, http.StatusBadRequest, msgPasswordTooLong)
			default:
				writeInternalError(w, "failed to register user", err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}
