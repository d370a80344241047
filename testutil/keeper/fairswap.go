package keeper

import (
	"testing"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/fairswap-labs/fairswap/x/fairswap/keeper"
	"github.com/fairswap-labs/fairswap/x/fairswap/ledger"
	"github.com/fairswap-labs/fairswap/x/fairswap/simulation"
	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

const (
	AssetX = "tokenx"
	AssetY = "tokeny"
)

// FairswapKeeper creates a test keeper backed by an in-memory store ledger.
func FairswapKeeper(t testing.TB, opts ...keeper.Option) (keeper.Keeper, sdk.Context, ledger.StoreLedger) {
	h, err := simulation.NewHarness(log.NewNopLogger(), opts...)
	require.NoError(t, err)

	require.NoError(t, h.Keeper.InitGenesis(h.Ctx, *types.DefaultGenesis()))

	return h.Keeper, h.Ctx, h.Ledger
}

// TestAddr returns a deterministic account address for name.
func TestAddr(name string) sdk.AccAddress {
	return simulation.AccountAddress(name)
}

// Fund mints amount of asset to addr.
func Fund(t testing.TB, l ledger.StoreLedger, ctx sdk.Context, addr sdk.AccAddress, asset string, amount uint64) {
	require.NoError(t, l.Mint(ctx, asset, addr, amount))
}

// CreateTestPool initializes an X/Y pool owned by authority and bootstraps
// it with (reserveX, reserveY) for lpAmount LP tokens.
func CreateTestPool(t testing.TB, k keeper.Keeper, ctx sdk.Context, l ledger.StoreLedger, authority sdk.AccAddress, feeBps uint16, reserveX, reserveY, lpAmount uint64) types.PoolID {
	id := types.NewPoolID(AssetX, AssetY, 0)
	_, err := k.Initialize(ctx, authority, id, feeBps)
	require.NoError(t, err)

	Fund(t, l, ctx, authority, AssetX, reserveX)
	Fund(t, l, ctx, authority, AssetY, reserveY)
	_, err = k.Deposit(ctx, authority, id, lpAmount, reserveX, reserveY)
	require.NoError(t, err)
	return id
}
