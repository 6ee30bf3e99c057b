package utils

import (
	"time"

	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in every access token. The role and country are convenience
// copies; the auth middleware reloads the user row on each request, so the
// database stays the source of truth.
type Claims struct {
	UserID  uint        `json:"userId"`
	Role    entity.Role `json:"role"`
	Country string      `json:"country"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 access token for the user.
func GenerateToken(u *entity.User, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:  u.ID,
		Role:    u.Role,
		Country: u.Country,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
