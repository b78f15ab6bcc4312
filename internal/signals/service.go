package signals

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/ventus-lab/ventus/internal/core/storage"
)

// Service is the name to id dictionary of aggregate signals.
type Service struct {
	store storage.AggregateStore
}

// NewService creates a Service backed by store.
func NewService(store storage.AggregateStore) *Service {
	return &Service{store: store}
}

// Map returns every known signal keyed by name.
func (s *Service) Map(ctx context.Context) (map[string]int64, error) {
	ids, err := s.store.SignalIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("signal map: %w", err)
	}
	return ids, nil
}

// Names returns every known signal name, sorted.
func (s *Service) Names(ctx context.Context) ([]string, error) {
	ids, err := s.Map(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ids))
	for name := range ids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Seed creates the catalog's signals that do not exist yet and returns them.
func (s *Service) Seed(ctx context.Context, catalog Catalog) ([]string, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("seed signals: %w", err)
	}

	created, err := s.store.EnsureSignals(ctx, catalog.Names())
	if err != nil {
		return nil, fmt.Errorf("seed signals: %w", err)
	}

	if len(created) == 0 {
		slog.Info("[Signals] All catalog signals already exist", "catalog_size", len(catalog.Names()))
	} else {
		slog.Info("[Signals] Seeded signals", "created", len(created), "names", created)
	}
	return created, nil
}
