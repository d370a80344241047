package keeper_test

import (
	"context"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/fairswap-labs/fairswap/testutil/keeper"
	"github.com/fairswap-labs/fairswap/x/fairswap/keeper"
	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

func TestLockUnlock(t *testing.T) {
	s := setupSwapPool(t)
	alice := s.trader(t, "alice", keepertest.AssetX, 100)

	require.ErrorIs(t, s.k.Lock(s.ctx, alice, s.id), types.ErrUnauthorized)
	require.False(t, s.pool(t).Locked)

	require.NoError(t, s.k.Lock(s.ctx, s.authority, s.id))
	require.True(t, s.pool(t).Locked)
	// Locking twice is harmless.
	require.NoError(t, s.k.Lock(s.ctx, s.authority, s.id))

	_, err := s.k.Swap(s.ctx, alice, s.id, keepertest.AssetX, 100, 1)
	require.ErrorIs(t, err, types.ErrPoolLocked)
	_, err = s.k.Deposit(s.ctx, s.authority, s.id, 10, 10, 20)
	require.ErrorIs(t, err, types.ErrPoolLocked)
	_, err = s.k.Withdraw(s.ctx, s.authority, s.id, 10, 1, 1)
	require.ErrorIs(t, err, types.ErrPoolLocked)

	// The lock check runs before input validation.
	_, err = s.k.Swap(s.ctx, alice, s.id, "tokenz", 0, 0)
	require.ErrorIs(t, err, types.ErrPoolLocked)

	require.ErrorIs(t, s.k.Unlock(s.ctx, alice, s.id), types.ErrUnauthorized)
	require.NoError(t, s.k.Unlock(s.ctx, s.authority, s.id))
	require.False(t, s.pool(t).Locked)

	_, err = s.k.Swap(s.ctx, alice, s.id, keepertest.AssetX, 100, 1)
	require.NoError(t, err)
}

func TestLock_UnknownPool(t *testing.T) {
	k, ctx, _ := keepertest.FairswapKeeper(t)
	err := k.Lock(ctx, keepertest.TestAddr("authority"), types.NewPoolID("a", "b", 0))
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestLock_EmptyAuthorityDeniesEveryone(t *testing.T) {
	k, ctx, _ := keepertest.FairswapKeeper(t)
	id := types.NewPoolID(keepertest.AssetX, keepertest.AssetY, 0)
	_, err := k.Initialize(ctx, nil, id, 30)
	require.NoError(t, err)

	require.ErrorIs(t, k.Lock(ctx, nil, id), types.ErrUnauthorized)
	require.ErrorIs(t, k.Lock(ctx, sdk.AccAddress{}, id), types.ErrUnauthorized)
}

type allowList map[string]bool

func (a allowList) IsAuthority(_ context.Context, _ types.Pool, caller sdk.AccAddress) bool {
	return a[caller.String()]
}

func TestLock_CustomAccessControl(t *testing.T) {
	operator := keepertest.TestAddr("operator")
	k, ctx, l := keepertest.FairswapKeeper(t, keeper.WithAccessControl(allowList{operator.String(): true}))
	authority := keepertest.TestAddr("authority")
	id := keepertest.CreateTestPool(t, k, ctx, l, authority, 30, 1000, 2000, 1000)

	require.ErrorIs(t, k.Lock(ctx, authority, id), types.ErrUnauthorized)
	require.NoError(t, k.Lock(ctx, operator, id))
}

type fixedClock uint64

func (c fixedClock) CurrentWindowID(context.Context) uint64 { return uint64(c) }

func TestSwap_CustomClock(t *testing.T) {
	k, ctx, l := keepertest.FairswapKeeper(t, keeper.WithClock(fixedClock(42)))
	id := keepertest.CreateTestPool(t, k, ctx, l, keepertest.TestAddr("authority"), 30, 1000, 2000, 1000)

	trader := keepertest.TestAddr("alice")
	keepertest.Fund(t, l, ctx, trader, keepertest.AssetX, 100)
	res, err := k.Swap(ctx, trader, id, keepertest.AssetX, 100, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(42), res.WindowID)

	w, err := k.GetPriceWindow(ctx, id)
	require.NoError(t, err)
	require.Equal(t, uint64(42), w.WindowID)
}
