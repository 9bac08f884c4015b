package services

import (
	"fmt"
	"time"

	"bookhaven/internal/models"

	"github.com/golang-jwt/jwt"
)

// tokenTTL is how long issued bearer and reset tokens stay valid
const tokenTTL = time.Hour

// TokenService issues and verifies the signed, time-limited tokens used for
// login sessions and password-reset links. The user id is the only claim.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a new token service
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

type userClaims struct {
	UserID string `json:"userId"`
	jwt.StandardClaims
}

// Issue creates a signed token carrying the user's id, valid for one hour
func (s *TokenService) Issue(userID string) (string, error) {
	claims := &userClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses a token and returns the embedded user id. Expired, malformed
// or wrongly-signed tokens all report models.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &userClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", models.ErrInvalidToken
	}

	return claims.UserID, nil
}
