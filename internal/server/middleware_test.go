package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockpile/internal/config"
	"stockpile/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const gateTestSecret = "gate_test_secret"

func signedToken(t *testing.T, secret, username string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      "1",
		"username": username,
		"name":     "Alice",
		"iss":      tokenIssuer,
		"aud":      tokenAudience,
		"exp":      now.Add(ttl).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Add(-time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newGateApp(mockRepo *MockUserRepository) *fiber.App {
	s := &Server{
		config:   &config.Config{JWTSecret: gateTestSecret},
		userRepo: mockRepo,
	}
	app := fiber.New()
	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		user := c.Locals("currentUser").(*models.User)
		return c.JSON(fiber.Map{"username": user.Username})
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	alice := &models.User{ID: 1, Name: "Alice", Username: "alice"}

	tests := []struct {
		name           string
		token          string
		mockSetup      func(m *MockUserRepository)
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Missing token",
			mockSetup:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Token is missing",
		},
		{
			name:           "Malformed token",
			token:          "not-a-jwt",
			mockSetup:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Token is invalid",
		},
		{
			name:           "Wrong signing secret",
			token:          "", // filled below
			mockSetup:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Token is invalid",
		},
		{
			name:           "Expired token",
			token:          "", // filled below
			mockSetup:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Token is invalid",
		},
		{
			name:  "User no longer exists",
			token: "", // filled below
			mockSetup: func(m *MockUserRepository) {
				m.On("GetByUsername", mock.Anything, "alice").Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Token is invalid",
		},
		{
			name:  "Valid token",
			token: "", // filled below
			mockSetup: func(m *MockUserRepository) {
				m.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.mockSetup(mockRepo)
			app := newGateApp(mockRepo)

			token := tt.token
			switch tt.name {
			case "Wrong signing secret":
				token = signedToken(t, "some-other-secret", "alice", time.Hour)
			case "Expired token":
				token = signedToken(t, gateTestSecret, "alice", -time.Hour)
			case "User no longer exists", "Valid token":
				token = signedToken(t, gateTestSecret, "alice", time.Hour)
			}

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if token != "" {
				req.Header.Set("x-access-token", token)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedError != "" {
				var payload models.ErrorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
				assert.Equal(t, tt.expectedError, payload.Error)
			}
		})
	}
}

func TestAuthRequiredRejectsWrongIssuer(t *testing.T) {
	mockRepo := new(MockUserRepository)
	app := newGateApp(mockRepo)

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      "1",
		"username": "alice",
		"iss":      "someone-else",
		"aud":      tokenAudience,
		"exp":      now.Add(time.Hour).Unix(),
		"iat":      now.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(gateTestSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("x-access-token", token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The gate must short-circuit without touching the store.
	mockRepo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
}

func TestIssuedTokenPassesGate(t *testing.T) {
	alice := &models.User{ID: 1, Name: "Alice", Username: "alice"}

	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)

	s := &Server{
		config:   &config.Config{JWTSecret: gateTestSecret},
		userRepo: mockRepo,
	}
	token, err := s.generateToken(alice.ID, alice.Username, alice.Name)
	require.NoError(t, err)

	app := newGateApp(mockRepo)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("x-access-token", token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "alice", payload["username"])
}
