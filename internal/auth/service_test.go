package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ventus-lab/ventus/internal/core/storage"
	storagemocks "github.com/ventus-lab/ventus/internal/mocks/storage"
)

func TestService_CreateUser(t *testing.T) {
	store := storagemocks.NewCredentialStore(t)
	store.EXPECT().CreateUser(mock.Anything, "alice").Return(int64(1), nil).Once()

	id, err := NewService(store).CreateUser(context.Background(), "  alice ")
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
}

func TestService_CreateUser_Errors(t *testing.T) {
	store := storagemocks.NewCredentialStore(t)
	svc := NewService(store)

	_, err := svc.CreateUser(context.Background(), " ")
	require.ErrorContains(t, err, "username is required")

	store.EXPECT().CreateUser(mock.Anything, "alice").Return(int64(0), storage.ErrDuplicate).Once()
	_, err = svc.CreateUser(context.Background(), "alice")
	require.ErrorIs(t, err, ErrUserExists)
}

func TestService_CreateAPIKey_StoresDigestOnly(t *testing.T) {
	store := storagemocks.NewCredentialStore(t)
	svc := NewService(store)
	svc.generateKey = func() (string, error) { return "plain-key", nil }

	store.EXPECT().CreateAPIKey(mock.Anything, int64(7), HashKey("plain-key"), "ETL job").Return(int64(11), nil).Once()

	key, err := svc.CreateAPIKey(context.Background(), 7, "ETL job")
	require.NoError(t, err)
	require.Equal(t, IssuedKey{ID: 11, Plain: "plain-key"}, key)
}

func TestService_CreateAPIKey_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "second key for user", err: storage.ErrDuplicate, wantErr: ErrKeyExists},
		{name: "unknown user", err: storage.ErrNotFound, wantErr: ErrUserNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := storagemocks.NewCredentialStore(t)
			store.EXPECT().CreateAPIKey(mock.Anything, int64(7), mock.Anything, "").Return(int64(0), tc.err).Once()

			_, err := NewService(store).CreateAPIKey(context.Background(), 7, "")
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("generator failure", func(t *testing.T) {
		svc := NewService(storagemocks.NewCredentialStore(t))
		svc.generateKey = func() (string, error) { return "", errors.New("entropy") }

		_, err := svc.CreateAPIKey(context.Background(), 7, "")
		require.ErrorContains(t, err, "entropy")
	})
}
