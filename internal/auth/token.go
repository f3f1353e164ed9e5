package auth

import (
	"errors"
	"time"

	"shophub_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by an access token.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed HS256 token for the user. TTL comes from the
// jwt config section (hours). Rotating the secret invalidates every
// outstanding token; there is no server-side revocation.
func GenerateToken(userID, role string) (string, error) {
	cfg := config.GetConfig()
	return GenerateTokenWithTTL(userID, role, time.Duration(cfg.JWT.TTL)*time.Hour)
}

// GenerateTokenWithTTL issues a token with an explicit lifetime.
func GenerateTokenWithTTL(userID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetConfig().JWT.Secret))
}

// ParseToken validates a token and returns its claims. Fails closed: expired,
// malformed, unsigned, or tampered tokens all yield ErrInvalidToken.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(config.GetConfig().JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
