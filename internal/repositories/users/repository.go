// Package users declares the user store consulted by the login flow and its
// PostgreSQL implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/models"
)

type Repository interface {
	// Create inserts user and fills in the generated ID and CreatedAt.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByEmail matches email exactly, without case folding.
	// Implementations return common.ErrorNotFound when no row matches.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
