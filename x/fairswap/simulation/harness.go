// Package simulation replays trade scenarios against an in-memory fairswap
// keeper and a plain constant product reference pool.
package simulation

import (
	"fmt"
	"math"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	"github.com/fairswap-labs/fairswap/x/fairswap/keeper"
	"github.com/fairswap-labs/fairswap/x/fairswap/ledger"
	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

// Harness is a fairswap keeper over an in-memory multistore with a
// store-backed ledger.
type Harness struct {
	Ctx    sdk.Context
	Keeper keeper.Keeper
	Ledger ledger.StoreLedger
}

// NewHarness mounts the module and ledger stores on a MemDB and returns a
// context at block height 0.
func NewHarness(logger log.Logger, opts ...keeper.Option) (*Harness, error) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	ledgerKey := storetypes.NewKVStoreKey(ledger.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(ledgerKey, storetypes.StoreTypeIAVL, db)
	if err := stateStore.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("load multistore: %w", err)
	}

	l := ledger.NewStoreLedger(ledgerKey)
	return &Harness{
		Ctx:    sdk.NewContext(stateStore, cmtproto.Header{}, false, logger),
		Keeper: keeper.NewKeeper(storeKey, l, opts...),
		Ledger: l,
	}, nil
}

// AtWindow moves the harness context to the given window (block height).
func (h *Harness) AtWindow(window uint64) error {
	if window > math.MaxInt64 {
		return fmt.Errorf("window %d exceeds block height range", window)
	}
	h.Ctx = h.Ctx.WithBlockHeight(int64(window))
	return nil
}

// Fund mints amount of asset to addr.
func (h *Harness) Fund(addr sdk.AccAddress, asset string, amount uint64) error {
	return h.Ledger.Mint(h.Ctx, asset, addr, amount)
}

// Balance returns addr's balance of asset.
func (h *Harness) Balance(addr sdk.AccAddress, asset string) uint64 {
	return h.Ledger.Balance(h.Ctx, asset, addr)
}

// AccountAddress derives a stable test account address from a name.
func AccountAddress(name string) sdk.AccAddress {
	return sdk.AccAddress(address.Hash("fairswap-sim", []byte(name))[:20])
}
