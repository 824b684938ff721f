package redisadapter

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emerald-ads/internal/config/configs"
	"emerald-ads/internal/core/domain"
	"emerald-ads/internal/core/port"
)

func setupStore(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *SessionStore) {
	mr := miniredis.RunT(t)
	cfg := configs.Redis{Addr: mr.Addr(), KeyPrefix: "session:", SessionTTL: ttl}
	c := NewClient(cfg)
	t.Cleanup(func() { _ = c.Close() })
	return mr, NewSessionStore(c, cfg)
}

func TestSessionRoundTrip(t *testing.T) {
	mr, store := setupStore(t, time.Hour)
	ctx := context.Background()

	in := domain.UserSession{ID: 7, Username: "ana", AccountBalance: decimal.RequireFromString("100.50")}
	require.NoError(t, store.Put(ctx, in))
	assert.True(t, mr.Exists("session:7"))
	assert.Equal(t, time.Hour, mr.TTL("session:7"))

	got, err := store.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "ana", got.Username)
	assert.True(t, got.AccountBalance.Equal(in.AccountBalance))
}

func TestSessionMissing(t *testing.T) {
	_, store := setupStore(t, 0)

	_, err := store.Get(context.Background(), 1)
	assert.ErrorIs(t, err, port.ErrSessionNotFound)

	_, err = store.UpdateBalance(context.Background(), 1, decimal.NewFromInt(5))
	assert.ErrorIs(t, err, port.ErrSessionNotFound)
}

func TestUpdateBalanceKeepsFieldsAndTTL(t *testing.T) {
	mr, store := setupStore(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, domain.UserSession{ID: 7, Username: "ana", IsAdmin: true, AccountBalance: decimal.NewFromInt(100)}))
	mr.FastForward(10 * time.Minute)

	got, err := store.UpdateBalance(ctx, 7, decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.True(t, got.AccountBalance.Equal(decimal.NewFromInt(50)))
	assert.True(t, got.IsAdmin)
	assert.Equal(t, 50*time.Minute, mr.TTL("session:7"))

	stored, err := store.Get(ctx, 7)
	require.NoError(t, err)
	assert.True(t, stored.AccountBalance.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "ana", stored.Username)
}

func TestSessionCorruptDocument(t *testing.T) {
	mr, store := setupStore(t, 0)
	require.NoError(t, mr.Set("session:3", "{not json"))

	_, err := store.Get(context.Background(), 3)
	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrSessionNotFound)
}
