// Package refreshtokens declares the server-side repository contract for
// persisting issued refresh tokens.
package refreshtokens

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/models"
)

// Repository defines operations for storing, retrieving, and revoking refresh tokens.
type Repository interface {
	// Create stores token.Token for token.UserID with the caller-computed
	// token.ExpiresAt, and fills in the generated ID and CreatedAt.
	Create(ctx context.Context, token *models.RefreshToken) error

	// Find looks up a refresh token by its opaque token string and returns its metadata.
	// Implementations should return a not-found error when the token is absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a refresh token by its token string. Deleting a non-existent
	// token should not be considered an error.
	Delete(ctx context.Context, token string) error
}
