package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gatepass/internal/auth"
	apperrors "gatepass/internal/errors"
)

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID, username string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, username, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "admin",
			password: "admin123",
			setupMock: func(m *MockTokenStore) {
				m.On("StoreRefreshToken", mock.Anything, mock.Anything, "admin", auth.RefreshTokenExpiry).Return(nil)
			},
		},
		{
			name:          "wrong password",
			username:      "admin",
			password:      "nope",
			setupMock:     func(m *MockTokenStore) {},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:          "wrong username",
			username:      "root",
			password:      "admin123",
			setupMock:     func(m *MockTokenStore) {},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockTokenStore)
			tt.setupMock(mockStore)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService("admin", "admin123", jwtService, mockStore)

			access, refresh, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, access)
				assert.Empty(t, refresh)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, access)
				assert.NotEmpty(t, refresh)

				claims, err := jwtService.ValidateToken(access)
				require.NoError(t, err)
				assert.Equal(t, "admin", claims.Username)
			}
			mockStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	t.Run("valid refresh token", func(t *testing.T) {
		tokenID, refresh, err := jwtService.GenerateRefreshToken("admin")
		require.NoError(t, err)

		mockStore := new(MockTokenStore)
		mockStore.On("GetRefreshToken", mock.Anything, tokenID).Return("admin", nil)
		svc := NewAuthService("admin", "admin123", jwtService, mockStore)

		access, err := svc.Refresh(context.Background(), refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, access)
	})

	t.Run("token unknown to the store", func(t *testing.T) {
		tokenID, refresh, err := jwtService.GenerateRefreshToken("admin")
		require.NoError(t, err)

		mockStore := new(MockTokenStore)
		mockStore.On("GetRefreshToken", mock.Anything, tokenID).Return("", assert.AnError)
		svc := NewAuthService("admin", "admin123", jwtService, mockStore)

		_, err = svc.Refresh(context.Background(), refresh)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := NewAuthService("admin", "admin123", jwtService, new(MockTokenStore))

		_, err := svc.Refresh(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refresh, err := jwtService.GenerateRefreshToken("admin")
	require.NoError(t, err)

	mockStore := new(MockTokenStore)
	mockStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)
	svc := NewAuthService("admin", "admin123", jwtService, mockStore)

	require.NoError(t, svc.Logout(context.Background(), refresh))
	mockStore.AssertExpectations(t)
}
