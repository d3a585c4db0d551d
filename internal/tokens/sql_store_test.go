package tokens

import (
	"context"
	"testing"
	"time"

	"workhub_backend/internal/repositories"
	"workhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLStoreRevoke(t *testing.T) {
	db := helpers.NewTestDB(t)
	store := NewSQLStore(db, repositories.NewRevokedTokenRepository())
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	expires := time.Now().UTC().Add(time.Hour)
	require.NoError(t, store.Revoke(ctx, "jti-1", expires))
	require.NoError(t, store.Revoke(ctx, "jti-1", expires), "revoking twice is not an error")

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestSQLStoreExpiry(t *testing.T) {
	db := helpers.NewTestDB(t)
	store := NewSQLStore(db, repositories.NewRevokedTokenRepository())
	ctx := context.Background()

	base := time.Now().UTC()
	require.NoError(t, store.Revoke(ctx, "short", base.Add(time.Minute)))
	require.NoError(t, store.Revoke(ctx, "long", base.Add(2*time.Hour)))
	require.NoError(t, store.Revoke(ctx, "already-expired", base.Add(-time.Minute)))

	store.now = func() time.Time { return base.Add(time.Hour) }

	revoked, err := store.IsRevoked(ctx, "short")
	require.NoError(t, err)
	assert.False(t, revoked, "expired entry is ignored")

	deleted, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	revoked, err = store.IsRevoked(ctx, "long")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "already-expired")
	require.NoError(t, err)
	assert.False(t, revoked)
}
