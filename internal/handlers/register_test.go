package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/sbilibin2017/roommate-finder/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerBody(age int) map[string]any {
	return map[string]any{
		"email":     "john@example.com",
		"password":  "secret",
		"full_name": "John Doe",
		"age":       age,
		"gender":    "male",
	}
}

func registerBodyWithPassword(password string) map[string]any {
	body := registerBody(25)
	body["password"] = password
	return body
}

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	profile := func(age int) models.UserProfile {
		return models.UserProfile{Email: "john@example.com", FullName: "John Doe", Age: age, Gender: "male"}
	}
	created := func(age int) *models.User {
		return &models.User{UserID: userID, Email: "john@example.com", FullName: "John Doe", Age: age, Gender: "male"}
	}

	tests := []struct {
		name         string
		body         any
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: registerBody(25),
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "secret", profile(25)).Return(created(25), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "lower age bound accepted",
			body: registerBody(18),
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "secret", profile(18)).Return(created(18), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "upper age bound accepted",
			body: registerBody(100),
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "secret", profile(100)).Return(created(100), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "age 17 rejected",
			body:         registerBody(17),
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Age must be between 18 and 100",
		},
		{
			name:         "age 101 rejected",
			body:         registerBody(101),
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Age must be between 18 and 100",
		},
		{
			name: "missing gender",
			body: map[string]any{
				"email": "john@example.com", "password": "secret", "full_name": "John Doe", "age": 30,
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Missing required fields: email, password, full_name, age, gender",
		},
		{
			name:         "empty body",
			body:         map[string]any{},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Missing required fields: email, password, full_name, age, gender",
		},
		{
			name: "email already registered",
			body: registerBody(25),
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "secret", profile(25)).Return(nil, services.ErrEmailAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "Email already registered",
		},
		{
			name: "internal server error",
			body: registerBody(25),
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "secret", profile(25)).Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
		{
			name: "72 byte password accepted",
			body: registerBodyWithPassword(strings.Repeat("a", 72)),
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), strings.Repeat("a", 72), profile(25)).Return(created(25), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "80 byte password rejected",
			body:         registerBodyWithPassword(strings.Repeat("a", 80)),
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Password must be at most 72 bytes",
		},
		{
			name:         "multibyte password over 72 bytes rejected",
			body:         registerBodyWithPassword(strings.Repeat("é", 40)),
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Password must be at most 72 bytes",
		},
		{
			name: "service rejects long password",
			body: registerBody(25),
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "secret", profile(25)).Return(nil, services.ErrPasswordTooLong)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Password must be at most 72 bytes",
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/users", jsonBody(t, tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, errorBody(t, rr))
				return
			}

			var user models.User
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
			assert.Equal(t, userID, user.UserID)
			assert.NotContains(t, rr.Body.String(), "password")
		})
	}
}

func TestRegisterHandler_EmptyOptionalFieldsBecomeNull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	mockSvc.EXPECT().
		Register(gomock.Any(), "secret", gomock.Any()).
		DoAndReturn(func(_ any, _ string, p models.UserProfile) (*models.User, error) {
			assert.Nil(t, p.ProfileURL)
			require.NotNil(t, p.Bio)
			assert.Equal(t, "hi", *p.Bio)
			return &models.User{UserID: uuid.New()}, nil
		})

	body := registerBody(30)
	body["profile_url"] = ""
	body["bio"] = "hi"

	rr := httptest.NewRecorder()
	NewRegisterHandler(mockSvc)(rr, httptest.NewRequest(http.MethodPost, "/api/users", jsonBody(t, body)))
	assert.Equal(t, http.StatusCreated, rr.Code)
}
