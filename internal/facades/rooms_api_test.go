package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *RoomsAPIFacade {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRoomsAPIFacade(srv.URL, time.Second)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestRoomsAPIFacade_ListRooms(t *testing.T) {
	id := uuid.New()
	f := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/rooms", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, []models.RoomView{{RoomDB: models.RoomDB{RoomID: id, Title: "Loft", RentAmount: 900}}})
	})

	rooms, err := f.ListRooms(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, id, rooms[0].RoomID)
	assert.Equal(t, 900.0, rooms[0].RentAmount)
}

func TestRoomsAPIFacade_GetRoomNotFound(t *testing.T) {
	id := uuid.New()
	f := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rooms/"+id.String(), r.URL.Path)
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Room not found"})
	})

	room, err := f.GetRoom(context.Background(), id)
	assert.Nil(t, room)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Room not found", apiErr.Message)
	assert.True(t, IsNotFound(err))
}

func TestRoomsAPIFacade_GetUser(t *testing.T) {
	id := uuid.New()
	f := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/users/"+id.String(), r.URL.Path)
		writeJSON(w, http.StatusOK, models.User{UserID: id, FullName: "Ann", Age: 30})
	})

	user, err := f.GetUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.FullName)
	assert.Equal(t, 30, user.Age)
}

func TestRoomsAPIFacade_Register(t *testing.T) {
	id := uuid.New()
	f := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ann@example.com", body["email"])
		assert.Equal(t, "pw", body["password"])
		assert.Equal(t, float64(29), body["age"])

		writeJSON(w, http.StatusCreated, models.User{UserID: id, Email: "ann@example.com", FullName: "Ann"})
	})

	user, err := f.Register(context.Background(), "pw", models.UserProfile{Email: "ann@example.com", FullName: "Ann", Age: 29, Gender: "female"})
	require.NoError(t, err)
	assert.Equal(t, id, user.UserID)
}

func TestRoomsAPIFacade_LoginUnauthorized(t *testing.T) {
	f := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/login", r.URL.Path)
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	})

	summary, err := f.Login(context.Background(), "ann@example.com", "bad")
	assert.Nil(t, summary)
	assert.EqualError(t, err, "api error 401: Invalid email or password")
	assert.False(t, IsNotFound(err))
}

func TestRoomsAPIFacade_UpdateUserOmitsPassword(t *testing.T) {
	id := uuid.New()
	f := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/users/"+id.String(), r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "password")
		assert.Contains(t, body, "bio")

		writeJSON(w, http.StatusOK, models.User{UserID: id, FullName: "Renamed"})
	})

	user, err := f.UpdateUser(context.Background(), id, models.UserProfile{Email: "a@b.c", FullName: "Renamed", Age: 30, Gender: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", user.FullName)
}

func TestRoomsAPIFacade_ErrorWithoutBody(t *testing.T) {
	f := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := f.ListUsers(context.Background(), 10)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestRoomsAPIFacade_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	f := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.ListRooms(ctx, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
