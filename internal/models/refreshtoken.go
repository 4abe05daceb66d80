package models

import "time"

// RefreshToken is the persisted record of an issued refresh token.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
