package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"gatepass/internal/auth"
	apperrors "gatepass/internal/errors"
)

// AuthService authenticates the single static admin credential pair and
// manages the JWT session built on it.
type AuthService interface {
	Login(ctx context.Context, username, password string) (accessToken, refreshToken string, err error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	adminUser  string
	adminPass  string
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates an AuthService checking against the configured
// admin credential pair.
func NewAuthService(adminUser, adminPass string, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		adminUser:  adminUser,
		adminPass:  adminPass,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Login compares the credential pair in constant time and issues an access
// and refresh token pair on success.
func (s *authService) Login(ctx context.Context, username, password string) (string, string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUser))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPass))
	if userOK&passOK != 1 {
		return "", "", apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(username)
	if err != nil {
		return "", "", fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(username)
	if err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, username, auth.RefreshTokenExpiry); err != nil {
		return "", "", fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

// Refresh validates a refresh token and returns a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	storedUser, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil || storedUser != claims.Username {
		return "", apperrors.ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.Username)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return apperrors.ErrInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}
