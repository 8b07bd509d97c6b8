package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by issued tokens.
type Claims struct {
	FarmerID uuid.UUID
	Type     string // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService is the session extension point. Sign-in itself only
// verifies identity; this component, when wired, turns a verified
// identity into bearer tokens.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a verified farmer.
	GenerateTokens(farmerID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of an access token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
