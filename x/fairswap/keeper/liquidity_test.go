package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/fairswap-labs/fairswap/testutil/keeper"
	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

func TestInitialize(t *testing.T) {
	k, ctx, _ := keepertest.FairswapKeeper(t)
	authority := keepertest.TestAddr("authority")
	id := types.NewPoolID(keepertest.AssetX, keepertest.AssetY, 0)

	pool, err := k.Initialize(ctx, authority, id, 30)
	require.NoError(t, err)
	require.True(t, pool.IsBootstrap())
	require.False(t, pool.Locked)
	require.Equal(t, types.DefaultPrecision, pool.Precision)

	w, err := k.GetPriceWindow(ctx, id)
	require.NoError(t, err)
	require.Equal(t, uint64(0), w.WindowID)
	require.False(t, w.BuyingXCeiling.IsSet())
	require.False(t, w.BuyingYCeiling.IsSet())

	_, err = k.Initialize(ctx, authority, id, 30)
	require.ErrorIs(t, err, types.ErrPoolAlreadyExists)

	// A different salt is a different pool over the same pair.
	_, err = k.Initialize(ctx, authority, types.NewPoolID(keepertest.AssetX, keepertest.AssetY, 1), 30)
	require.NoError(t, err)

	_, err = k.Initialize(ctx, authority, types.NewPoolID(keepertest.AssetX, keepertest.AssetY, 2), 10000)
	require.ErrorIs(t, err, types.ErrInvalidFeeSet)

	_, err = k.Initialize(ctx, authority, types.NewPoolID(keepertest.AssetX, keepertest.AssetX, 0), 30)
	require.ErrorIs(t, err, types.ErrInvalidPool)

	pools, err := k.GetAllPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 2)
}

func TestDeposit_Bootstrap(t *testing.T) {
	k, ctx, l := keepertest.FairswapKeeper(t)
	authority := keepertest.TestAddr("authority")
	id := keepertest.CreateTestPool(t, k, ctx, l, authority, 30, 1000, 2000, 1000)

	pool, err := k.GetPool(ctx, id)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), pool.ReserveX)
	require.Equal(t, uint64(2000), pool.ReserveY)
	require.Equal(t, uint64(1000), pool.LPSupply)
	require.Equal(t, uint64(1000), l.Balance(ctx, pool.LPDenom(), authority))
	require.Zero(t, l.Balance(ctx, keepertest.AssetX, authority))
}

func TestDeposit_Proportional(t *testing.T) {
	k, ctx, l := keepertest.FairswapKeeper(t)
	id := keepertest.CreateTestPool(t, k, ctx, l, keepertest.TestAddr("authority"), 30, 1000, 2000, 1000)

	lp := keepertest.TestAddr("lp")
	keepertest.Fund(t, l, ctx, lp, keepertest.AssetX, 500)
	keepertest.Fund(t, l, ctx, lp, keepertest.AssetY, 500)

	_, err := k.Deposit(ctx, lp, id, 100, 100, 199)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	amounts, err := k.Deposit(ctx, lp, id, 100, 100, 200)
	require.NoError(t, err)
	require.Equal(t, types.LiquidityAmounts{X: 100, Y: 200}, amounts)

	pool, err := k.GetPool(ctx, id)
	require.NoError(t, err)
	require.Equal(t, uint64(1100), pool.ReserveX)
	require.Equal(t, uint64(2200), pool.ReserveY)
	require.Equal(t, uint64(1100), pool.LPSupply)
	require.Equal(t, uint64(100), l.Balance(ctx, pool.LPDenom(), lp))
	require.Equal(t, uint64(400), l.Balance(ctx, keepertest.AssetX, lp))
	require.Equal(t, uint64(300), l.Balance(ctx, keepertest.AssetY, lp))

	_, err = k.Deposit(ctx, lp, id, 0, 100, 100)
	require.ErrorIs(t, err, types.ErrZeroBalance)
}

func TestDeposit_InsufficientFundsMovesNothing(t *testing.T) {
	k, ctx, l := keepertest.FairswapKeeper(t)
	id := keepertest.CreateTestPool(t, k, ctx, l, keepertest.TestAddr("authority"), 30, 1000, 2000, 1000)
	before, err := k.GetPool(ctx, id)
	require.NoError(t, err)

	// Enough X, not enough Y: the X transfer must be rolled back too.
	lp := keepertest.TestAddr("lp")
	keepertest.Fund(t, l, ctx, lp, keepertest.AssetX, 100)
	keepertest.Fund(t, l, ctx, lp, keepertest.AssetY, 150)

	_, err = k.Deposit(ctx, lp, id, 100, 100, 200)
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	after, err := k.GetPool(ctx, id)
	require.NoError(t, err)
	require.Equal(t, before, after)
	require.Equal(t, uint64(100), l.Balance(ctx, keepertest.AssetX, lp))
	require.Equal(t, uint64(150), l.Balance(ctx, keepertest.AssetY, lp))
	require.Zero(t, l.Balance(ctx, after.LPDenom(), lp))
}

func TestWithdraw(t *testing.T) {
	k, ctx, l := keepertest.FairswapKeeper(t)
	authority := keepertest.TestAddr("authority")
	id := keepertest.CreateTestPool(t, k, ctx, l, authority, 30, 1000, 2000, 1000)

	_, err := k.Withdraw(ctx, authority, id, 500, 501, 1)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	_, err = k.Withdraw(ctx, authority, id, 1001, 1, 1)
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	amounts, err := k.Withdraw(ctx, authority, id, 500, 500, 1000)
	require.NoError(t, err)
	require.Equal(t, types.LiquidityAmounts{X: 500, Y: 1000}, amounts)

	pool, err := k.GetPool(ctx, id)
	require.NoError(t, err)
	require.Equal(t, uint64(500), pool.ReserveX)
	require.Equal(t, uint64(1000), pool.ReserveY)
	require.Equal(t, uint64(500), pool.LPSupply)
	require.Equal(t, uint64(500), l.Balance(ctx, pool.LPDenom(), authority))
	require.Equal(t, uint64(500), l.Balance(ctx, keepertest.AssetX, authority))
	require.Equal(t, uint64(1000), l.Balance(ctx, keepertest.AssetY, authority))

	// Draining the pool returns it to the bootstrap state.
	_, err = k.Withdraw(ctx, authority, id, 500, 1, 1)
	require.NoError(t, err)
	pool, err = k.GetPool(ctx, id)
	require.NoError(t, err)
	require.True(t, pool.IsBootstrap())
}

func TestWithdraw_WithoutLPTokensMovesNothing(t *testing.T) {
	k, ctx, l := keepertest.FairswapKeeper(t)
	id := keepertest.CreateTestPool(t, k, ctx, l, keepertest.TestAddr("authority"), 30, 1000, 2000, 1000)
	before, err := k.GetPool(ctx, id)
	require.NoError(t, err)

	stranger := keepertest.TestAddr("stranger")
	_, err = k.Withdraw(ctx, stranger, id, 100, 1, 1)
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	after, err := k.GetPool(ctx, id)
	require.NoError(t, err)
	require.Equal(t, before, after)
	require.Zero(t, l.Balance(ctx, keepertest.AssetX, stranger))
}
