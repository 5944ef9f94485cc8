package utils_test

import (
	"context"
	"testing"
	"time"

	"wallet_ledger/internal/testutil"
	"wallet_ledger/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Wallet uint     `json:"wallet"`
	Types  []string `json:"types"`
}

func TestCacheSetGet(t *testing.T) {
	rdb, mr := testutil.NewRedis(t)
	ctx := context.Background()

	_, ok, err := utils.CacheGet[entry](ctx, rdb, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	want := entry{Wallet: 3, Types: []string{"ENTRADA"}}
	require.NoError(t, utils.CacheSet(ctx, rdb, "k", want, time.Minute))
	got, ok, err := utils.CacheGet[entry](ctx, rdb, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	mr.FastForward(2 * time.Minute)
	_, ok, err = utils.CacheGet[entry](ctx, rdb, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheGetCorruptEntry(t *testing.T) {
	rdb, mr := testutil.NewRedis(t)
	require.NoError(t, mr.Set("k", "not json"))

	_, ok, err := utils.CacheGet[entry](context.Background(), rdb, "k")

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestCounter(t *testing.T) {
	rdb, _ := testutil.NewRedis(t)
	ctx := context.Background()

	n, err := utils.Counter(ctx, rdb, "gen")
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, rdb.Incr(ctx, "gen").Err())
	n, err = utils.Counter(ctx, rdb, "gen")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
