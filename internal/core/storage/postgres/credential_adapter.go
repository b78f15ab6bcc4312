package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ventus-lab/ventus/internal/core/storage"
)

// CredentialAdapter implements storage.CredentialStore over the users and
// api_keys tables.
type CredentialAdapter struct {
	db    *sql.DB
	nowFn func() time.Time
}

// NewCredentialAdapter creates a CredentialAdapter sharing the given connection.
func NewCredentialAdapter(db *sql.DB) *CredentialAdapter {
	return &CredentialAdapter{
		db: db,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// LookupAPIKey resolves an active key by digest.
func (a *CredentialAdapter) LookupAPIKey(ctx context.Context, hashedKey string) (*storage.Credential, error) {
	var c storage.Credential
	err := a.db.QueryRowContext(ctx, queryLookupAPIKey, hashedKey).Scan(&c.APIKeyID, &c.UserID, &c.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup api key: %w", err)
	}
	return &c, nil
}

// CreateUser inserts username and returns the new id.
func (a *CredentialAdapter) CreateUser(ctx context.Context, username string) (int64, error) {
	var id int64
	err := a.db.QueryRowContext(ctx, queryInsertUser, username).Scan(&id)
	if pqCode(err) == pgUniqueViolation {
		return 0, storage.ErrDuplicate
	}
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	slog.Info("[Postgres] Created user", "user_id", id, "username", username)
	return id, nil
}

// CreateAPIKey stores a hashed key for userID. A user holds at most one key.
func (a *CredentialAdapter) CreateAPIKey(ctx context.Context, userID int64, hashedKey, description string) (int64, error) {
	var id int64
	err := inTx(ctx, a.db, "create api key", func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx, queryUserHasAPIKey, userID).Scan(&exists); err != nil {
			return fmt.Errorf("create api key: check existing: %w", err)
		}
		if exists {
			return storage.ErrDuplicate
		}

		err := tx.QueryRowContext(ctx, queryInsertAPIKey, userID, hashedKey, description, a.nowFn()).Scan(&id)
		switch pqCode(err) {
		case pgForeignKeyViolation:
			return storage.ErrNotFound
		case pgUniqueViolation:
			return storage.ErrDuplicate
		}
		if err != nil {
			return fmt.Errorf("create api key: insert: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("[Postgres] Created API key", "api_key_id", id, "user_id", userID)
	return id, nil
}
