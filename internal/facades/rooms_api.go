package facades

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/logger"
	"github.com/sbilibin2017/roommate-finder/internal/models"
)

// DefaultTimeout bounds a single API call.
const DefaultTimeout = 15 * time.Second

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type errorBody struct {
	Error string `json:"error"`
}

type userBody struct {
	Email       string  `json:"email"`
	Password    string  `json:"password,omitempty"`
	FullName    string  `json:"full_name"`
	Age         int     `json:"age"`
	Gender      string  `json:"gender"`
	ProfileURL  *string `json:"profile_url"`
	PhoneNumber *string `json:"phone_number"`
	Bio         *string `json:"bio"`
}

func newUserBody(password string, p models.UserProfile) userBody {
	return userBody{
		Email:       p.Email,
		Password:    password,
		FullName:    p.FullName,
		Age:         p.Age,
		Gender:      p.Gender,
		ProfileURL:  p.ProfileURL,
		PhoneNumber: p.PhoneNumber,
		Bio:         p.Bio,
	}
}

// RoomsAPIFacade fetches rooms and users from the REST API over HTTP.
// Calls are not retried.
type RoomsAPIFacade struct {
	client *resty.Client
}

// NewRoomsAPIFacade creates a facade for the API at baseURL.
func NewRoomsAPIFacade(baseURL string, timeout time.Duration) *RoomsAPIFacade {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &RoomsAPIFacade{client: client}
}

// ListRooms fetches up to limit aggregated rooms, newest first.
func (f *RoomsAPIFacade) ListRooms(ctx context.Context, limit int) ([]models.RoomView, error) {
	var rooms []models.RoomView
	err := f.do(ctx, f.client.R().
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&rooms), http.MethodGet, "/api/rooms")
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoom fetches one aggregated room.
func (f *RoomsAPIFacade) GetRoom(ctx context.Context, id uuid.UUID) (*models.RoomView, error) {
	var room models.RoomView
	err := f.do(ctx, f.client.R().
		SetPathParam("id", id.String()).
		SetResult(&room), http.MethodGet, "/api/rooms/{id}")
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// ListUsers fetches up to limit users, newest first.
func (f *RoomsAPIFacade) ListUsers(ctx context.Context, limit int) ([]models.User, error) {
	var users []models.User
	err := f.do(ctx, f.client.R().
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&users), http.MethodGet, "/api/users")
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches one user.
func (f *RoomsAPIFacade) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := f.do(ctx, f.client.R().
		SetPathParam("id", id.String()).
		SetResult(&user), http.MethodGet, "/api/users/{id}")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates an account.
func (f *RoomsAPIFacade) Register(ctx context.Context, password string, profile models.UserProfile) (*models.User, error) {
	var user models.User
	err := f.do(ctx, f.client.R().
		SetBody(newUserBody(password, profile)).
		SetResult(&user), http.MethodPost, "/api/users")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login checks credentials and returns the minimal user projection.
func (f *RoomsAPIFacade) Login(ctx context.Context, email, password string) (*models.UserSummary, error) {
	var summary models.UserSummary
	err := f.do(ctx, f.client.R().
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&summary), http.MethodPost, "/api/users/login")
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// UpdateUser replaces the profile of a user.
func (f *RoomsAPIFacade) UpdateUser(ctx context.Context, id uuid.UUID, profile models.UserProfile) (*models.User, error) {
	var user models.User
	err := f.do(ctx, f.client.R().
		SetPathParam("id", id.String()).
		SetBody(newUserBody("", profile)).
		SetResult(&user), http.MethodPut, "/api/users/{id}")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (f *RoomsAPIFacade) do(ctx context.Context, req *resty.Request, method, path string) error {
	var apiErr errorBody
	resp, err := req.SetContext(ctx).SetError(&apiErr).Execute(method, path)
	if err != nil {
		logger.Log.Errorw("api request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.IsError() {
		msg := apiErr.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		logger.Log.Debugw("api returned error", "method", method, "path", path, "status", resp.StatusCode(), "message", msg)
		return &APIError{Status: resp.StatusCode(), Message: msg}
	}

	logger.Log.Debugw("api request", "method", method, "path", path, "status", resp.StatusCode(), "duration", resp.Time())
	return nil
}
