package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ventus-lab/ventus/internal/core/storage"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrKeyExists    = errors.New("user already has an API key")
)

// IssuedKey is a freshly created API key. Plain is shown once and never stored.
type IssuedKey struct {
	ID    int64
	Plain string
}

// Service provisions users and API keys.
type Service struct {
	store       storage.CredentialStore
	generateKey func() (string, error)
}

func NewService(store storage.CredentialStore) *Service {
	return &Service{store: store, generateKey: GenerateKey}
}

// CreateUser registers username and returns its id.
func (s *Service) CreateUser(ctx context.Context, username string) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, fmt.Errorf("username is required")
	}

	id, err := s.store.CreateUser(ctx, username)
	if errors.Is(err, storage.ErrDuplicate) {
		return 0, fmt.Errorf("%w: %q", ErrUserExists, username)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CreateAPIKey issues the single API key of userID.
func (s *Service) CreateAPIKey(ctx context.Context, userID int64, description string) (IssuedKey, error) {
	plain, err := s.generateKey()
	if err != nil {
		return IssuedKey{}, err
	}

	id, err := s.store.CreateAPIKey(ctx, userID, HashKey(plain), strings.TrimSpace(description))
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		return IssuedKey{}, fmt.Errorf("%w: user_id=%d", ErrKeyExists, userID)
	case errors.Is(err, storage.ErrNotFound):
		return IssuedKey{}, fmt.Errorf("%w: user_id=%d", ErrUserNotFound, userID)
	case err != nil:
		return IssuedKey{}, err
	}

	slog.Info("[Auth] Issued API key", "api_key_id", id, "user_id", userID)
	return IssuedKey{ID: id, Plain: plain}, nil
}
