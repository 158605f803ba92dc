package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/bramapp/bram/internal/common"
	"github.com/bramapp/bram/internal/dbx"
	"github.com/bramapp/bram/internal/models"
)

// Store persists the session profile. There is no state machine beyond
// presence or absence of the one record.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo() Repository {
	return NewSQLiteRepository(s.db)
}

// Save serializes the profile under the well-known key, replacing any
// previous value.
func (s *Store) Save(ctx context.Context, p models.Profile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return NewSQLiteRepository(tx).Set(ctx, common.ProfileKey, b)
	})
}

// Load returns the stored profile, or nil when logged out.
func (s *Store) Load(ctx context.Context) (*models.Profile, error) {
	b, err := s.repo().Get(ctx, common.ProfileKey)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}

	var p models.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &p, nil
}

// Clear removes the stored profile (logout).
func (s *Store) Clear(ctx context.Context) error {
	return s.repo().Delete(ctx, common.ProfileKey)
}
