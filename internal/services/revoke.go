package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/models"
)

// RefreshTokenStore is the lookup/delete side of refresh-token persistence.
type RefreshTokenStore interface {
	Find(ctx context.Context, token string) (*models.RefreshToken, error)
	Delete(ctx context.Context, token string) error
}

// RevokeRefreshToken removes a persisted refresh token so it can no longer be
// exchanged. An unknown token yields common.ErrorNotFound.
type RevokeRefreshToken struct {
	tokens RefreshTokenStore
}

func NewRevokeRefreshToken(tokens RefreshTokenStore) *RevokeRefreshToken {
	return &RevokeRefreshToken{tokens: tokens}
}

// Execute returns the revoked record.
func (s *RevokeRefreshToken) Execute(ctx context.Context, token string) (*models.RefreshToken, error) {
	rec, err := s.tokens.Find(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if err := s.tokens.Delete(ctx, token); err != nil {
		return nil, fmt.Errorf("error deleting refresh token: %w", err)
	}
	return rec, nil
}
