// Package services contains authkeeper's business logic. This file implements
// AuthenticateUser: credential verification followed by access/refresh token
// issuance and refresh-token persistence.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/auth"
	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/config"
	"github.com/dmitrijs2005/authkeeper/internal/models"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
)

// UserFinder is the read side of the user store.
type UserFinder interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// RefreshTokenCreator persists issued refresh tokens.
type RefreshTokenCreator interface {
	Create(ctx context.Context, token *models.RefreshToken) error
}

// PasswordVerifier compares a plaintext password with a stored hash.
type PasswordVerifier interface {
	Compare(plaintext, hash string) bool
}

// TokenSigner mints a signed token for the given payload.
type TokenSigner interface {
	Sign(payload map[string]any, secret []byte, opts auth.SignOptions) (string, error)
}

// PublicUser is the part of a user record that may be returned to clients.
type PublicUser struct {
	Name  string
	Email string
}

// AuthResponse is the result of a successful login.
type AuthResponse struct {
	User         PublicUser
	AccessToken  string
	RefreshToken string
}

// AuthenticateUser verifies credentials and issues a token pair. It is
// stateless and safe for concurrent use.
type AuthenticateUser struct {
	users    UserFinder
	tokens   RefreshTokenCreator
	verifier PasswordVerifier
	signer   TokenSigner
	clock    timex.Clock
	cfg      config.AuthConfig
}

func NewAuthenticateUser(users UserFinder, tokens RefreshTokenCreator, verifier PasswordVerifier,
	signer TokenSigner, clock timex.Clock, cfg config.AuthConfig) *AuthenticateUser {
	return &AuthenticateUser{
		users:    users,
		tokens:   tokens,
		verifier: verifier,
		signer:   signer,
		clock:    clock,
		cfg:      cfg,
	}
}

// Execute logs the user in.
//
// An unknown email and a wrong password both yield common.ErrInvalidCredentials.
// Signing and persistence failures wrap common.ErrSigningFailure and
// common.ErrPersistenceFailure; in every error case no tokens are returned.
func (s *AuthenticateUser) Execute(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	if !s.verifier.Compare(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	accessToken, err := s.sign(nil, s.cfg.AccessTokenSecret, user.ID, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.sign(map[string]any{"email": user.Email}, s.cfg.RefreshTokenSecret, user.ID, s.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	record := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: s.clock.AddDays(s.cfg.RefreshTokenTTLDays),
	}
	if err := s.tokens.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrPersistenceFailure, err)
	}

	return &AuthResponse{
		User:         PublicUser{Name: user.Name, Email: user.Email},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthenticateUser) sign(payload map[string]any, secret, subject string, ttl time.Duration) (string, error) {
	token, err := s.signer.Sign(payload, []byte(secret), auth.SignOptions{Subject: subject, ExpiresIn: ttl})
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrSigningFailure, err)
	}
	return token, nil
}
