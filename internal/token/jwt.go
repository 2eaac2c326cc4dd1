package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taskloop/taskloop-server/internal/model"
)

// Claims represents JWT claims carrying the authenticated user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
}

// JWT implements model.TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
}

// NewJWT creates a new JWT token manager signing with the provided
// secret and issuing tokens valid for ttl.
func NewJWT(secretKey string, ttl time.Duration) model.TokenManager {
	return &JWT{secretKey: secretKey, ttl: ttl}
}

// Generate creates a signed token bound to userID.
func (j *JWT) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse validates tokenString and extracts the user ID. Expired tokens
// fail with model.ErrTokenExpired, everything else with
// model.ErrTokenInvalid.
func (j *JWT) Parse(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, model.ErrTokenExpired
		}
		return uuid.Nil, model.ErrTokenInvalid
	}
	if !token.Valid {
		return uuid.Nil, model.ErrTokenInvalid
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, model.ErrTokenInvalid
	}
	return claims.UserID, nil
}
