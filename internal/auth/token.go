// Package auth contains the credential primitives used by the login flow:
// HS256 JWT signing/parsing and bcrypt password verification.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrEmptySecret is returned when a token is signed or parsed with an empty key.
var ErrEmptySecret = errors.New("empty signing secret")

// SignOptions carries the registered claims the caller controls.
type SignOptions struct {
	Subject   string
	ExpiresIn time.Duration
}

// RefreshClaims is the decoded payload of a refresh token.
type RefreshClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// HMACSigner mints compact HS256 tokens.
type HMACSigner struct {
	now func() time.Time
}

func NewHMACSigner() *HMACSigner {
	return &HMACSigner{now: time.Now}
}

// Sign encodes payload as custom claims next to sub, iat, exp and a random jti.
// Payload keys that collide with registered claims are overwritten.
func (s *HMACSigner) Sign(payload map[string]any, secret []byte, opts SignOptions) (string, error) {
	if len(secret) == 0 {
		return "", ErrEmptySecret
	}

	now := s.now()

	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["sub"] = opts.Subject
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(opts.ExpiresIn))
	claims["jti"] = uuid.NewString()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseAccessToken verifies signature and expiry and returns the registered claims.
func ParseAccessToken(tokenString string, secret []byte) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if err := parse(tokenString, secret, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ParseRefreshToken verifies signature and expiry and returns the subject and email.
func ParseRefreshToken(tokenString string, secret []byte) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := parse(tokenString, secret, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func parse(tokenString string, secret []byte, claims jwt.Claims) error {
	if len(secret) == 0 {
		return ErrEmptySecret
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return common.ErrTokenExpired
		}
		return fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return common.ErrInvalidToken
	}

	return nil
}
