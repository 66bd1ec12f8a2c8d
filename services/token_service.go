package services

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/mattys-media/backend/apperrors"
)

const tokenTTL = 24 * time.Hour

// TokenService is responsible for creating and validating the signed
// bearer tokens that bind a user id to a 24h expiry.
type TokenService struct {
	secretKey []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secretKey: []byte(secret)}
}

// Issue creates a signed token for the given user id.
func (s *TokenService) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Verify parses the token and returns the user id it carries. An expired
// token and a malformed or tampered one fail with distinct errors.
func (s *TokenService) Verify(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return s.secretKey, nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return "", apperrors.Wrap(apperrors.ErrTokenExpired, err)
		}
		return "", apperrors.Wrap(apperrors.ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", apperrors.ErrInvalidToken
	}
	return userID, nil
}
