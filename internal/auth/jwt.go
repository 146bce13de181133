package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// devFallbackSecret only exists so the server still boots in local
// development without a JWT_SECRET configured.
const devFallbackSecret = "dev-secret-change-me"

// Tokens signs and validates the API's JWTs with a single HMAC secret.
// Construct it once in main from the loaded config and pass it down;
// the secret never lives in package state.
type Tokens struct {
	secret []byte
}

// NewTokens returns a Tokens using the given secret, or the development
// fallback when the secret is empty.
func NewTokens(secret string) *Tokens {
	if secret == "" {
		secret = devFallbackSecret
	}
	return &Tokens{secret: []byte(secret)}
}

// Generate creates a signed JWT for the given user ID.
func (t *Tokens) Generate(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,                                // subject = user ID
		"exp": time.Now().Add(time.Hour * 72).Unix(), // expires in 3 days
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate parses a JWT string and returns the user ID it was issued for.
func (t *Tokens) Validate(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but our HMAC method.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil {
		return 0, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		userIDFloat, ok := claims["sub"].(float64)
		if !ok {
			return 0, errors.New("invalid subject claim")
		}
		return int64(userIDFloat), nil
	}

	return 0, errors.New("invalid token")
}
