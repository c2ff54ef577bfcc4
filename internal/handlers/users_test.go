package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/sbilibin2017/roommate-finder/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockUserLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name:  "default limit",
			query: "",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().List(gomock.Any(), 100).Return([]models.User{{UserID: uuid.New()}, {UserID: uuid.New()}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:  "explicit limit",
			query: "?limit=1",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().List(gomock.Any(), 1).Return([]models.User{{UserID: uuid.New()}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:         "invalid limit",
			query:        "?limit=x",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "internal error",
			query: "",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().List(gomock.Any(), 100).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewListUsersHandler(mockSvc, DefaultLimits)(rr, httptest.NewRequest(http.MethodGet, "/api/users"+tt.query, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}
			var users []models.User
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
			assert.Len(t, users, tt.expectedLen)
		})
	}
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockUserGetter)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "found",
			id:   id.String(),
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(&models.User{UserID: id, Email: "a@b.c"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			id:   id.String(),
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "User not found",
		},
		{
			name:         "invalid id",
			id:           "42",
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid id",
		},
		{
			name: "internal error",
			id:   id.String(),
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/users/"+tt.id, nil), map[string]string{"id": tt.id})
			rr := httptest.NewRecorder()
			NewGetUserHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, errorBody(t, rr))
				return
			}
			assert.NotContains(t, rr.Body.String(), "password")
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	body := UpdateUserRequest{Email: "new@example.com", FullName: "New Name", Age: 40, Gender: "female"}
	profile := models.UserProfile{Email: "new@example.com", FullName: "New Name", Age: 40, Gender: "female"}

	tests := []struct {
		name         string
		body         any
		mockSetup    func(m *MockUserUpdater)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "updated",
			body: body,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().Update(gomock.Any(), id, profile).Return(&models.User{UserID: id, Email: "new@example.com"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			body: body,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().Update(gomock.Any(), id, profile).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "User not found",
		},
		{
			name: "email taken",
			body: body,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().Update(gomock.Any(), id, profile).Return(nil, services.ErrEmailAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "Email already registered",
		},
		{
			name:         "missing fields",
			body:         UpdateUserRequest{Email: "new@example.com", Age: 40},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Missing required fields: full_name, gender",
		},
		{
			name:         "age out of range",
			body:         UpdateUserRequest{Email: "new@example.com", FullName: "N", Age: 120, Gender: "male"},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid value for field: age",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := withURLParams(
				httptest.NewRequest(http.MethodPut, "/api/users/"+id.String(), jsonBody(t, tt.body)),
				map[string]string{"id": id.String()},
			)
			rr := httptest.NewRecorder()
			NewUpdateUserHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, errorBody(t, rr))
			}
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "deleted", expectedCode: http.StatusNoContent},
		{name: "not found", err: services.ErrUserNotFound, expectedCode: http.StatusNotFound},
		{name: "internal error", err: errors.New("db down"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserDeleter(ctrl)
			mockSvc.EXPECT().Delete(gomock.Any(), id).Return(tt.err)

			req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/users/"+id.String(), nil), map[string]string{"id": id.String()})
			rr := httptest.NewRecorder()
			NewDeleteUserHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
