package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenStore tracks issued token IDs so that logout and account
// deactivation can revoke bearer tokens before they expire.
type TokenStore interface {
	Save(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}
