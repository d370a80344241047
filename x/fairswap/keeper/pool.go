package keeper

import (
	"context"
	"strconv"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

// GetPool returns the pool stored under id.
func (k Keeper) GetPool(ctx context.Context, id types.PoolID) (types.Pool, error) {
	bz := k.getStore(ctx).Get(types.GetPoolKey(id))
	if bz == nil {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool %s", id)
	}
	pool, err := types.UnmarshalPool(bz)
	if err != nil {
		return types.Pool{}, types.ErrInvalidState.Wrapf("decode pool %s: %v", id, err)
	}
	return pool, nil
}

// HasPool reports whether a pool exists under id.
func (k Keeper) HasPool(ctx context.Context, id types.PoolID) bool {
	return k.getStore(ctx).Has(types.GetPoolKey(id))
}

// SetPool stores a pool record.
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) {
	k.getStore(ctx).Set(types.GetPoolKey(pool.ID), types.MarshalPool(pool))
	k.recordPoolGauges(pool)
}

// GetPriceWindow returns the ratchet window of a pool.
func (k Keeper) GetPriceWindow(ctx context.Context, id types.PoolID) (types.PriceWindow, error) {
	bz := k.getStore(ctx).Get(types.GetWindowKey(id))
	if bz == nil {
		return types.PriceWindow{}, types.ErrPoolNotFound.Wrapf("price window for pool %s", id)
	}
	w, err := types.UnmarshalWindow(bz)
	if err != nil {
		return types.PriceWindow{}, types.ErrInvalidState.Wrapf("decode window %s: %v", id, err)
	}
	return w, nil
}

// SetPriceWindow stores a pool's ratchet window.
func (k Keeper) SetPriceWindow(ctx context.Context, id types.PoolID, w types.PriceWindow) {
	k.getStore(ctx).Set(types.GetWindowKey(id), types.MarshalWindow(w))
}

// IteratePools calls cb for every pool in key order until cb returns true.
func (k Keeper) IteratePools(ctx context.Context, cb func(types.Pool) (stop bool)) error {
	iter := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.PoolKeyPrefix)
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		pool, err := types.UnmarshalPool(iter.Value())
		if err != nil {
			return types.ErrInvalidState.Wrapf("decode pool at key %X: %v", iter.Key(), err)
		}
		if cb(pool) {
			return nil
		}
	}
	return nil
}

// GetAllPools returns every pool in key order.
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	var pools []types.Pool
	err := k.IteratePools(ctx, func(p types.Pool) bool {
		pools = append(pools, p)
		return false
	})
	return pools, err
}

// Initialize creates an empty, unlocked pool for the pair and salt, recording
// authority as its administrator.
func (k Keeper) Initialize(ctx context.Context, authority sdk.AccAddress, id types.PoolID, feeBps uint16) (pool types.Pool, err error) {
	span := startSpan(ctx, "Initialize", id)
	defer func() { endSpan(span, err) }()

	if err := id.Validate(); err != nil {
		return types.Pool{}, err
	}
	if err := types.ValidateFee(feeBps); err != nil {
		return types.Pool{}, err
	}
	if k.HasPool(ctx, id) {
		return types.Pool{}, types.ErrPoolAlreadyExists.Wrapf("pool %s", id)
	}

	pool = types.NewPool(id, authority, feeBps)
	k.SetPool(ctx, pool)
	k.SetPriceWindow(ctx, id, types.NewPriceWindow())

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeInitialize,
			sdk.NewAttribute(types.AttributeKeyPool, id.String()),
			sdk.NewAttribute(types.AttributeKeyCaller, authority.String()),
			sdk.NewAttribute(types.AttributeKeyFee, strconv.FormatUint(uint64(feeBps), 10)),
		),
	)
	k.Logger(ctx).Info("pool initialized", "pool", id.String(), "fee_bps", feeBps, "lp_denom", pool.LPDenom())

	return pool, nil
}

// loadActivePool fetches a pool and rejects locked ones before any math runs.
func (k Keeper) loadActivePool(ctx context.Context, id types.PoolID) (types.Pool, error) {
	pool, err := k.GetPool(ctx, id)
	if err != nil {
		return types.Pool{}, err
	}
	if pool.Locked {
		return types.Pool{}, types.ErrPoolLocked.Wrapf("pool %s", id)
	}
	return pool, nil
}

func (k Keeper) recordPoolGauges(pool types.Pool) {
	label := pool.ID.String()
	k.metrics.PoolReserves.WithLabelValues(label, pool.ID.AssetX).Set(float64(pool.ReserveX))
	k.metrics.PoolReserves.WithLabelValues(label, pool.ID.AssetY).Set(float64(pool.ReserveY))
	k.metrics.LPTokenSupply.WithLabelValues(label).Set(float64(pool.LPSupply))
	locked := 0.0
	if pool.Locked {
		locked = 1
	}
	k.metrics.PoolLocked.WithLabelValues(label).Set(locked)
}
