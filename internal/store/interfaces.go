// Package store holds the client's state: one in-memory server-confirmed
// collection per backend entity (the slices), and the durable SQLite
// keystore for the session credential.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/token_store_mock.go -package=mock

// TokenStore is the durable storage for the bearer credential. A single
// credential is current at any time; Save replaces it and Clear removes it,
// each atomically from the caller's perspective. Only the session store
// writes it; the gateway's unauthorized hook is the one other path that may
// trigger Clear.
type TokenStore interface {
	// Save persists token as the current credential, replacing any previous
	// one.
	Save(ctx context.Context, token string) error

	// Load returns the current credential, or ErrNoCredential if none is
	// stored.
	Load(ctx context.Context) (string, error)

	// Clear removes the stored credential. Clearing an empty store is not
	// an error.
	Clear(ctx context.Context) error
}
