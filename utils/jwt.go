package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in every access token. Perms is the base64-encoded JSON
// capability map issued at login.
type Claims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	Perms  string `json:"perms"`
	jwt.RegisteredClaims
}

func GenerateToken(userID uint, role string, caps Capabilities, secret string, ttl time.Duration) (string, error) {
	blob, err := caps.Encode()
	if err != nil {
		return "", err
	}
	claims := &Claims{
		UserID: userID,
		Role:   role,
		Perms:  blob,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
