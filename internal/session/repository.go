// Package session persists the logged-in user's profile in a local
// SQLite database. The profile is one JSON value under one well-known
// metadata key; presence means logged in, absence means logged out.
package session

import "context"

// Repository is a small key/value store over the local metadata table.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
