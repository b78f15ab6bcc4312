package storage

import (
	"context"
	"errors"
	"time"

	v1 "github.com/ventus-lab/ventus/internal/api/v1"
)

var (
	// ErrDuplicate is returned when a unique key (username, hashed key) already exists.
	ErrDuplicate = errors.New("record already exists")

	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
)

// DataQuery selects a page of rows from the source data table.
// Start is exclusive and End inclusive; a nil bound is not applied.
type DataQuery struct {
	Fields []string
	Start  *time.Time
	End    *time.Time
	Limit  int
	Offset int64
}

// DataReader reads measurements from the source database.
type DataReader interface {
	// CountData counts rows matching the query bounds, ignoring Limit and Offset.
	CountData(ctx context.Context, q DataQuery) (int64, error)

	// ListData returns the projected rows ordered by ts descending.
	ListData(ctx context.Context, q DataQuery) ([]v1.DataPoint, error)
}

// Credential is an active API key joined to its owner.
type Credential struct {
	APIKeyID int64
	UserID   int64
	Username string
}

// CredentialStore manages users and hashed API keys.
type CredentialStore interface {
	// LookupAPIKey resolves an active key by its hex SHA-256 digest.
	// Returns ErrNotFound for unknown or inactive keys.
	LookupAPIKey(ctx context.Context, hashedKey string) (*Credential, error)

	// CreateUser inserts a user and returns its id, or ErrDuplicate.
	CreateUser(ctx context.Context, username string) (int64, error)

	// CreateAPIKey stores a hashed key for userID. Returns ErrDuplicate when the
	// user already owns a key and ErrNotFound when the user does not exist.
	CreateAPIKey(ctx context.Context, userID int64, hashedKey, description string) (int64, error)
}

// AggregatePoint is one statistic of one window, addressed by signal name.
type AggregatePoint struct {
	Signal string
	TS     time.Time
	Value  float64
}

// AggregateStore persists windowed aggregates in the target database.
type AggregateStore interface {
	// SignalIDs returns the full signal name to id dictionary.
	SignalIDs(ctx context.Context) (map[string]int64, error)

	// EnsureSignals creates the names that do not exist yet and returns them.
	EnsureSignals(ctx context.Context, names []string) ([]string, error)

	// UpsertPoints resolves (creating when needed) every signal referenced by
	// points and upserts the values keyed by (signal_id, ts), all in one
	// transaction. Returns the number of points written.
	UpsertPoints(ctx context.Context, points []AggregatePoint) (int, error)
}
