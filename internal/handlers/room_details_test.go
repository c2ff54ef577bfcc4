package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/sbilibin2017/roommate-finder/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestReplaceAmenitiesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name         string
		body         any
		mockSetup    func(m *MockAmenityReplacer)
		expectedCode int
	}{
		{
			name: "replaced",
			body: AmenitiesRequest{Amenities: []string{"WiFi", "Parking"}},
			mockSetup: func(m *MockAmenityReplacer) {
				m.EXPECT().ReplaceAmenities(gomock.Any(), id, []string{"WiFi", "Parking"}).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "cleared",
			body: map[string]any{"amenities": []string{}},
			mockSetup: func(m *MockAmenityReplacer) {
				m.EXPECT().ReplaceAmenities(gomock.Any(), id, []string{}).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "missing list",
			body:         map[string]any{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "blank amenity",
			body:         AmenitiesRequest{Amenities: []string{"WiFi", ""}},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "room not found",
			body: AmenitiesRequest{Amenities: []string{"WiFi"}},
			mockSetup: func(m *MockAmenityReplacer) {
				m.EXPECT().ReplaceAmenities(gomock.Any(), id, gomock.Any()).Return(services.ErrRoomNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "internal error",
			body: AmenitiesRequest{Amenities: []string{"WiFi"}},
			mockSetup: func(m *MockAmenityReplacer) {
				m.EXPECT().ReplaceAmenities(gomock.Any(), id, gomock.Any()).Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAmenityReplacer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := withURLParams(
				httptest.NewRequest(http.MethodPut, "/api/rooms/"+id.String()+"/amenities", jsonBody(t, tt.body)),
				map[string]string{"id": id.String()},
			)
			rr := httptest.NewRecorder()
			NewReplaceAmenitiesHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAddPhotoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	caption := "Window view"

	t.Run("created", func(t *testing.T) {
		mockSvc := NewMockPhotoAdder(ctrl)
		photo := models.RoomPhoto{PhotoURL: "https://img/1.jpg", Caption: &caption, DisplayOrder: 2}
		mockSvc.EXPECT().AddPhoto(gomock.Any(), id, photo).Return(&photo, nil)

		req := withURLParams(
			httptest.NewRequest(http.MethodPost, "/api/rooms/"+id.String()+"/photos", jsonBody(t, PhotoRequest{PhotoURL: "https://img/1.jpg", Caption: &caption, DisplayOrder: 2})),
			map[string]string{"id": id.String()},
		)
		rr := httptest.NewRecorder()
		NewAddPhotoHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"photo_url":"https://img/1.jpg","caption":"Window view","display_order":2}`, rr.Body.String())
	})

	t.Run("negative order", func(t *testing.T) {
		req := withURLParams(
			httptest.NewRequest(http.MethodPost, "/api/rooms/"+id.String()+"/photos", jsonBody(t, PhotoRequest{PhotoURL: "x", DisplayOrder: -1})),
			map[string]string{"id": id.String()},
		)
		rr := httptest.NewRecorder()
		NewAddPhotoHandler(NewMockPhotoAdder(ctrl))(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid value for field: display_order", errorBody(t, rr))
	})

	t.Run("room not found", func(t *testing.T) {
		mockSvc := NewMockPhotoAdder(ctrl)
		mockSvc.EXPECT().AddPhoto(gomock.Any(), id, gomock.Any()).Return(nil, services.ErrRoomNotFound)

		req := withURLParams(
			httptest.NewRequest(http.MethodPost, "/api/rooms/"+id.String()+"/photos", jsonBody(t, PhotoRequest{PhotoURL: "x"})),
			map[string]string{"id": id.String()},
		)
		rr := httptest.NewRecorder()
		NewAddPhotoHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestSetMemberHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roomID, userID := uuid.New(), uuid.New()
	params := map[string]string{"id": roomID.String(), "userID": userID.String()}
	path := "/api/rooms/" + roomID.String() + "/members/" + userID.String()

	tests := []struct {
		name         string
		params       map[string]string
		body         any
		mockSetup    func(m *MockMemberSetter)
		expectedCode int
	}{
		{
			name:   "resident",
			params: params,
			body:   map[string]any{"is_current_resident": true},
			mockSetup: func(m *MockMemberSetter) {
				m.EXPECT().SetMember(gomock.Any(), roomID, userID, true).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "former resident",
			params: params,
			body:   map[string]any{"is_current_resident": false},
			mockSetup: func(m *MockMemberSetter) {
				m.EXPECT().SetMember(gomock.Any(), roomID, userID, false).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "flag missing",
			params:       params,
			body:         map[string]any{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid user id",
			params:       map[string]string{"id": roomID.String(), "userID": "nope"},
			body:         map[string]any{"is_current_resident": true},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "unknown room or user",
			params: params,
			body:   map[string]any{"is_current_resident": true},
			mockSetup: func(m *MockMemberSetter) {
				m.EXPECT().SetMember(gomock.Any(), roomID, userID, true).Return(services.ErrMembershipReference)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMemberSetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := withURLParams(httptest.NewRequest(http.MethodPut, path, jsonBody(t, tt.body)), tt.params)
			rr := httptest.NewRecorder()
			NewSetMemberHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
