package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/meridiancruises/compliance-backend/models"
)

type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) Validate(ctx context.Context, token string) (models.Credentials, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(models.Credentials), args.Error(1)
}

func TestParseAuthorizationBearerHeader(t *testing.T) {
	t.Run("missing header yields an empty token", func(t *testing.T) {
		token, err := ParseAuthorizationBearerHeader(http.Header{})
		assert.NoError(t, err)
		assert.Equal(t, "", token)
	})

	t.Run("well-formed bearer header", func(t *testing.T) {
		header := http.Header{}
		header.Set("Authorization", "Bearer some-token")

		token, err := ParseAuthorizationBearerHeader(header)
		assert.NoError(t, err)
		assert.Equal(t, "some-token", token)
	})

	t.Run("malformed header", func(t *testing.T) {
		header := http.Header{}
		header.Set("Authorization", "NotBearer some-token")

		_, err := ParseAuthorizationBearerHeader(header)
		assert.ErrorIs(t, err, models.UnAuthorizedError)
	})
}

func TestAuthenticationMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupHeaders   func(*http.Request)
		setupValidator func(*MockValidator)
		expectedStatus int
	}{
		{
			name: "success with bearer token",
			setupHeaders: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer test-token")
			},
			setupValidator: func(v *MockValidator) {
				v.On("Validate", mock.Anything, "test-token").
					Return(models.Credentials{
						ActorIdentity: models.Identity{Email: "test@example.com"},
						Roles:         []models.Role{models.RoleAnalyst},
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid bearer token format",
			setupHeaders: func(r *http.Request) {
				r.Header.Set("Authorization", "InvalidFormat")
			},
			setupValidator: func(v *MockValidator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:         "unauthorized when no header is sent",
			setupHeaders: func(r *http.Request) {},
			setupValidator: func(v *MockValidator) {
				v.On("Validate", mock.Anything, "").
					Return(models.Credentials{}, models.UnAuthorizedError)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unauthorized when validation fails",
			setupHeaders: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer expired-token")
			},
			setupValidator: func(v *MockValidator) {
				v.On("Validate", mock.Anything, "expired-token").
					Return(models.Credentials{}, models.UnAuthorizedError)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := new(MockValidator)
			tt.setupValidator(validator)
			auth := NewAuthentication(validator)

			w := httptest.NewRecorder()
			_, engine := gin.CreateTestContext(w)

			engine.GET("/test", auth.Middleware, func(c *gin.Context) {
				if tt.expectedStatus == http.StatusOK {
					creds, found := CredentialsFromCtx(c.Request.Context())
					assert.True(t, found, "credentials should be set in context")
					assert.NotEmpty(t, creds.ActorIdentity.Email)
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.setupHeaders(req)

			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			validator.AssertExpectations(t)
		})
	}
}
