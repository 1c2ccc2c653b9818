package localstore

import (
	"context"
	"path/filepath"
	"testing"

	"menfes/config"
	"menfes/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) repository.LocalStore {
	cfg := &config.Config{}
	cfg.Storage.Path = filepath.Join(t.TempDir(), "localstore.json")

	s, err := New(cfg)
	require.NoError(t, err)

	return s
}

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Get(ctx, repository.KeyIdentity)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, repository.KeyIdentity, "u_abc123"))

	got, err := s.Get(ctx, repository.KeyIdentity)
	require.NoError(t, err)
	assert.Equal(t, "u_abc123", got)

	require.NoError(t, s.Delete(ctx, repository.KeyIdentity))
	_, err = s.Get(ctx, repository.KeyIdentity)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.Storage.Path = filepath.Join(t.TempDir(), "localstore.json")

	s, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, repository.KeyPushToken, "tok-1"))

	reopened, err := New(cfg)
	require.NoError(t, err)

	got, err := reopened.Get(ctx, repository.KeyPushToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)
}

func TestStore_DeleteAbsentKeyIsNoError(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.Delete(context.Background(), "never-set"))
}
