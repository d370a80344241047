package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Ledger holds token balances and moves value. Implementations must fail
// closed: a failed call moves nothing.
type Ledger interface {
	Transfer(ctx context.Context, asset string, from, to sdk.AccAddress, amount uint64) error
	Mint(ctx context.Context, asset string, to sdk.AccAddress, amount uint64) error
	Burn(ctx context.Context, asset string, from sdk.AccAddress, amount uint64) error
	Balance(ctx context.Context, asset string, owner sdk.AccAddress) uint64
}

// AccessControl decides whether caller may administer pool.
type AccessControl interface {
	IsAuthority(ctx context.Context, pool Pool, caller sdk.AccAddress) bool
}

// WindowClock supplies the monotonically non-decreasing window counter.
type WindowClock interface {
	CurrentWindowID(ctx context.Context) uint64
}

// BankKeeper is the subset of the bank keeper the bank-backed Ledger uses.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
}

// FairswapKeeperV1 is the interface exposed to other modules.
type FairswapKeeperV1 interface {
	GetPool(ctx context.Context, id PoolID) (Pool, error)
	GetPriceWindow(ctx context.Context, id PoolID) (PriceWindow, error)
	SimulateSwap(ctx context.Context, id PoolID, inputAsset string, amountIn, minAmountOut uint64) (SwapResult, error)
}
