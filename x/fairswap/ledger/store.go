// Package ledger provides implementations of the fairswap Ledger contract.
package ledger

import (
	"context"
	"encoding/binary"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

// StoreKey is the conventional store key for a StoreLedger.
const StoreKey = "fairswap_ledger"

var balancePrefix = []byte{0x01}

// StoreLedger keeps balances in its own KV store. It runs inside the caller's
// sdk.Context, so a cache context discards its writes like any other store.
type StoreLedger struct {
	storeKey storetypes.StoreKey
}

var _ types.Ledger = StoreLedger{}

// NewStoreLedger returns a ledger persisting under key.
func NewStoreLedger(key storetypes.StoreKey) StoreLedger {
	return StoreLedger{storeKey: key}
}

func balanceKey(asset string, owner sdk.AccAddress) []byte {
	key := make([]byte, 0, 2+len(asset)+len(owner))
	key = append(key, balancePrefix...)
	key = append(key, byte(len(asset)))
	key = append(key, asset...)
	return append(key, owner...)
}

func (l StoreLedger) store(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(l.storeKey)
}

// Balance implements types.Ledger.
func (l StoreLedger) Balance(ctx context.Context, asset string, owner sdk.AccAddress) uint64 {
	bz := l.store(ctx).Get(balanceKey(asset, owner))
	if len(bz) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (l StoreLedger) setBalance(ctx context.Context, asset string, owner sdk.AccAddress, amount uint64) {
	key := balanceKey(asset, owner)
	if amount == 0 {
		l.store(ctx).Delete(key)
		return
	}
	l.store(ctx).Set(key, binary.BigEndian.AppendUint64(nil, amount))
}

// Transfer implements types.Ledger.
func (l StoreLedger) Transfer(ctx context.Context, asset string, from, to sdk.AccAddress, amount uint64) error {
	fromBal := l.Balance(ctx, asset, from)
	if fromBal < amount {
		return types.ErrInsufficientBalance.Wrapf("%s holds %d %s, needs %d", from, fromBal, asset, amount)
	}
	if from.Equals(to) {
		return nil
	}
	toBal, err := types.AddUint64(l.Balance(ctx, asset, to), amount)
	if err != nil {
		return err
	}
	l.setBalance(ctx, asset, from, fromBal-amount)
	l.setBalance(ctx, asset, to, toBal)
	return nil
}

// Mint implements types.Ledger.
func (l StoreLedger) Mint(ctx context.Context, asset string, to sdk.AccAddress, amount uint64) error {
	bal, err := types.AddUint64(l.Balance(ctx, asset, to), amount)
	if err != nil {
		return err
	}
	l.setBalance(ctx, asset, to, bal)
	return nil
}

// Burn implements types.Ledger.
func (l StoreLedger) Burn(ctx context.Context, asset string, from sdk.AccAddress, amount uint64) error {
	bal := l.Balance(ctx, asset, from)
	if bal < amount {
		return types.ErrInsufficientBalance.Wrapf("%s holds %d %s, cannot burn %d", from, bal, asset, amount)
	}
	l.setBalance(ctx, asset, from, bal-amount)
	return nil
}
