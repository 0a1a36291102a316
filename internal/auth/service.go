package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"workjunction-backend/internal/database/models"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID string `json:"user_id" example:"9c5a9d1e-2f63-4f58-a1b0-7f6d7b6e1c11"`
	Email  string `json:"email" example:"jane.doe@example.com"`
	Role   string `json:"role" example:"worker"`
	jwt.RegisteredClaims
}

// AuthService issues and validates signed JWT access tokens
type AuthService struct {
	secret     []byte
	expiration time.Duration
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string, expiration time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return &AuthService{
		secret:     []byte(secret),
		expiration: expiration,
	}, nil
}

// GenerateJWT creates a signed access token for a user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "workjunction-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, fmt.Errorf("invalid user id in token: %w", err)
	}

	return claims, nil
}

// Expiration returns the configured access token lifetime
func (s *AuthService) Expiration() time.Duration {
	return s.expiration
}
