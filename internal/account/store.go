package account

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("account not found")

// Store is the durable account store, the source of truth for every
// status/role decision. Cache layers in front of it are reconstructable
// projections and never authoritative.
type Store interface {
	FindByUsername(ctx context.Context, username string) (*Account, error)
	FindByUID(ctx context.Context, uid int64) (*Account, error)

	// FindMaxUID returns the highest assigned uid, or 0 for an empty store.
	FindMaxUID(ctx context.Context) (int64, error)

	// Insert persists a new account and returns the store-assigned uid.
	Insert(ctx context.Context, a *Account) (int64, error)
}
