package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

// Keeper of the fairswap store
type Keeper struct {
	storeKey storetypes.StoreKey
	ledger   types.Ledger
	access   types.AccessControl
	clock    types.WindowClock
	metrics  *Metrics
}

// Option customizes a Keeper.
type Option func(*Keeper)

// WithAccessControl replaces the default recorded-authority check.
func WithAccessControl(ac types.AccessControl) Option {
	return func(k *Keeper) { k.access = ac }
}

// WithClock replaces the default block height window clock.
func WithClock(c types.WindowClock) Option {
	return func(k *Keeper) { k.clock = c }
}

// NewKeeper creates a new fairswap Keeper instance
func NewKeeper(key storetypes.StoreKey, ledger types.Ledger, opts ...Option) Keeper {
	if ledger == nil {
		panic("fairswap keeper requires a ledger")
	}
	k := Keeper{
		storeKey: key,
		ledger:   ledger,
		access:   RecordedAuthority{},
		clock:    BlockHeightClock{},
		metrics:  GetMetrics(),
	}
	for _, opt := range opts {
		opt(&k)
	}
	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// getStore returns the KVStore for the fairswap module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(k.storeKey)
}

// BlockHeightClock uses the block height as the window counter.
type BlockHeightClock struct{}

// CurrentWindowID implements types.WindowClock.
func (BlockHeightClock) CurrentWindowID(ctx context.Context) uint64 {
	h := sdk.UnwrapSDKContext(ctx).BlockHeight()
	if h < 0 {
		return 0
	}
	return uint64(h)
}

// RecordedAuthority authorizes only the authority recorded on the pool.
type RecordedAuthority struct{}

// IsAuthority implements types.AccessControl.
func (RecordedAuthority) IsAuthority(_ context.Context, pool types.Pool, caller sdk.AccAddress) bool {
	return len(pool.Authority) > 0 && pool.Authority.Equals(caller)
}

var _ types.FairswapKeeperV1 = Keeper{}
