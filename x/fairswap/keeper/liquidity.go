package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

// Deposit mints lpAmount LP tokens to provider in exchange for a proportional
// share of both reserves, bounded by maxX and maxY. The first deposit into an
// empty pool takes exactly (maxX, maxY) and sets the initial price.
func (k Keeper) Deposit(ctx context.Context, provider sdk.AccAddress, id types.PoolID, lpAmount, maxX, maxY uint64) (amounts types.LiquidityAmounts, err error) {
	span := startSpan(ctx, "Deposit", id)
	defer func() { endSpan(span, err) }()

	pool, err := k.loadActivePool(ctx, id)
	if err != nil {
		return types.LiquidityAmounts{}, err
	}
	if lpAmount == 0 || maxX == 0 || maxY == 0 {
		return types.LiquidityAmounts{}, types.ErrZeroBalance.Wrap("lp amount and deposit bounds must be positive")
	}

	if pool.IsBootstrap() {
		amounts = types.LiquidityAmounts{X: maxX, Y: maxY}
	} else {
		amounts, err = types.DepositAmountsFromLP(pool.ReserveX, pool.ReserveY, pool.LPSupply, lpAmount, pool.Precision)
		if err != nil {
			return types.LiquidityAmounts{}, err
		}
		if amounts.X > maxX || amounts.Y > maxY {
			return types.LiquidityAmounts{}, types.ErrSlippageExceeded.Wrapf(
				"deposit requires (%d, %d), bounds are (%d, %d)", amounts.X, amounts.Y, maxX, maxY)
		}
		if amounts.X == 0 || amounts.Y == 0 {
			return types.LiquidityAmounts{}, types.ErrZeroBalance.Wrapf("lp amount %d buys a zero reserve share", lpAmount)
		}
	}

	// Compute the new counters up front so a rejected operation moves nothing.
	updated := pool
	if updated.ReserveX, err = types.AddUint64(pool.ReserveX, amounts.X); err != nil {
		return types.LiquidityAmounts{}, err
	}
	if updated.ReserveY, err = types.AddUint64(pool.ReserveY, amounts.Y); err != nil {
		return types.LiquidityAmounts{}, err
	}
	if updated.LPSupply, err = types.AddUint64(pool.LPSupply, lpAmount); err != nil {
		return types.LiquidityAmounts{}, err
	}

	vault := pool.VaultAddress()
	err = k.settle(ctx, func(cacheCtx context.Context) error {
		if err := k.ledger.Transfer(cacheCtx, pool.ID.AssetX, provider, vault, amounts.X); err != nil {
			return err
		}
		if err := k.ledger.Transfer(cacheCtx, pool.ID.AssetY, provider, vault, amounts.Y); err != nil {
			return err
		}
		return k.ledger.Mint(cacheCtx, pool.LPDenom(), provider, lpAmount)
	})
	if err != nil {
		return types.LiquidityAmounts{}, err
	}

	k.SetPool(ctx, updated)

	label := pool.ID.String()
	k.metrics.LiquidityAdded.WithLabelValues(label, pool.ID.AssetX).Add(float64(amounts.X))
	k.metrics.LiquidityAdded.WithLabelValues(label, pool.ID.AssetY).Add(float64(amounts.Y))
	emitLiquidityTelemetry("deposit", lpAmount)

	k.emitLiquidityEvent(ctx, types.EventTypeDeposit, pool.ID, provider, amounts, lpAmount)
	k.Logger(ctx).Debug("liquidity deposited",
		"pool", label,
		"provider", provider.String(),
		"x", amounts.X,
		"y", amounts.Y,
		"lp", lpAmount,
		"bootstrap", pool.IsBootstrap(),
	)

	return amounts, nil
}

// Withdraw burns lpAmount LP tokens from provider and pays out the
// proportional share of both reserves, rounded down, bounded below by minX
// and minY.
func (k Keeper) Withdraw(ctx context.Context, provider sdk.AccAddress, id types.PoolID, lpAmount, minX, minY uint64) (amounts types.LiquidityAmounts, err error) {
	span := startSpan(ctx, "Withdraw", id)
	defer func() { endSpan(span, err) }()

	pool, err := k.loadActivePool(ctx, id)
	if err != nil {
		return types.LiquidityAmounts{}, err
	}
	if lpAmount == 0 || minX == 0 || minY == 0 {
		return types.LiquidityAmounts{}, types.ErrZeroBalance.Wrap("lp amount and withdrawal bounds must be positive")
	}
	if lpAmount > pool.LPSupply {
		return types.LiquidityAmounts{}, types.ErrInsufficientBalance.Wrapf(
			"lp amount %d exceeds supply %d", lpAmount, pool.LPSupply)
	}

	amounts, err = types.WithdrawAmountsFromLP(pool.ReserveX, pool.ReserveY, pool.LPSupply, lpAmount, pool.Precision)
	if err != nil {
		return types.LiquidityAmounts{}, err
	}
	if amounts.X < minX || amounts.Y < minY {
		return types.LiquidityAmounts{}, types.ErrSlippageExceeded.Wrapf(
			"withdrawal yields (%d, %d), minimums are (%d, %d)", amounts.X, amounts.Y, minX, minY)
	}

	updated := pool
	if updated.ReserveX, err = types.SubUint64(pool.ReserveX, amounts.X); err != nil {
		return types.LiquidityAmounts{}, err
	}
	if updated.ReserveY, err = types.SubUint64(pool.ReserveY, amounts.Y); err != nil {
		return types.LiquidityAmounts{}, err
	}
	if updated.LPSupply, err = types.SubUint64(pool.LPSupply, lpAmount); err != nil {
		return types.LiquidityAmounts{}, err
	}
	if err := updated.Validate(); err != nil {
		return types.LiquidityAmounts{}, err
	}

	vault := pool.VaultAddress()
	err = k.settle(ctx, func(cacheCtx context.Context) error {
		if err := k.ledger.Burn(cacheCtx, pool.LPDenom(), provider, lpAmount); err != nil {
			return err
		}
		if err := k.ledger.Transfer(cacheCtx, pool.ID.AssetX, vault, provider, amounts.X); err != nil {
			return err
		}
		return k.ledger.Transfer(cacheCtx, pool.ID.AssetY, vault, provider, amounts.Y)
	})
	if err != nil {
		return types.LiquidityAmounts{}, err
	}

	k.SetPool(ctx, updated)

	label := pool.ID.String()
	k.metrics.LiquidityRemoved.WithLabelValues(label, pool.ID.AssetX).Add(float64(amounts.X))
	k.metrics.LiquidityRemoved.WithLabelValues(label, pool.ID.AssetY).Add(float64(amounts.Y))
	emitLiquidityTelemetry("withdraw", lpAmount)

	k.emitLiquidityEvent(ctx, types.EventTypeWithdraw, pool.ID, provider, amounts, lpAmount)
	k.Logger(ctx).Debug("liquidity withdrawn",
		"pool", label,
		"provider", provider.String(),
		"x", amounts.X,
		"y", amounts.Y,
		"lp", lpAmount,
	)

	return amounts, nil
}

// settle runs the ledger calls of one operation in a cache context and
// writes them only if every call succeeded.
func (k Keeper) settle(ctx context.Context, fn func(cacheCtx context.Context) error) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

func (k Keeper) emitLiquidityEvent(ctx context.Context, eventType string, id types.PoolID, provider sdk.AccAddress, amounts types.LiquidityAmounts, lpAmount uint64) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyPool, id.String()),
			sdk.NewAttribute(types.AttributeKeyCaller, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountX, strconv.FormatUint(amounts.X, 10)),
			sdk.NewAttribute(types.AttributeKeyAmountY, strconv.FormatUint(amounts.Y, 10)),
			sdk.NewAttribute(types.AttributeKeyLPAmount, strconv.FormatUint(lpAmount, 10)),
		),
	)
}
