package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

// Lock stops deposits, withdrawals and swaps on a pool (authority only)
func (k Keeper) Lock(ctx context.Context, caller sdk.AccAddress, id types.PoolID) error {
	return k.setLocked(ctx, caller, id, true)
}

// Unlock resumes a locked pool (authority only)
func (k Keeper) Unlock(ctx context.Context, caller sdk.AccAddress, id types.PoolID) error {
	return k.setLocked(ctx, caller, id, false)
}

func (k Keeper) setLocked(ctx context.Context, caller sdk.AccAddress, id types.PoolID, locked bool) (err error) {
	op, eventType := "Unlock", types.EventTypeUnlock
	if locked {
		op, eventType = "Lock", types.EventTypeLock
	}
	span := startSpan(ctx, op, id)
	defer func() { endSpan(span, err) }()

	pool, err := k.GetPool(ctx, id)
	if err != nil {
		return err
	}
	if !k.access.IsAuthority(ctx, pool, caller) {
		return types.ErrUnauthorized.Wrapf("%s is not the authority of pool %s", caller, id)
	}

	pool.Locked = locked
	k.SetPool(ctx, pool)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyPool, id.String()),
			sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
		),
	)
	k.Logger(ctx).Info("pool lock state changed", "pool", id.String(), "locked", locked, "height", sdkCtx.BlockHeight())

	return nil
}
