package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

// Swap trades amountIn of inputAsset for the pool's other asset. The curve
// quote is clamped by the window's price ceiling for that buy direction, so
// no trader in a window is paid at a better price than one already granted.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, id types.PoolID, inputAsset string, amountIn, minAmountOut uint64) (res types.SwapResult, err error) {
	span := startSpan(ctx, "Swap", id)
	defer func() { endSpan(span, err) }()

	pool, err := k.loadActivePool(ctx, id)
	if err != nil {
		return types.SwapResult{}, err
	}

	res, trade, err := k.quote(ctx, pool, inputAsset, amountIn, minAmountOut)
	if err != nil {
		if trade.direction != "" {
			k.metrics.SwapsTotal.WithLabelValues(pool.ID.String(), trade.direction, "failed").Inc()
		}
		return types.SwapResult{}, err
	}

	updated := pool
	if trade.buyingX {
		updated.ReserveY, err = types.AddUint64(pool.ReserveY, res.Deposit)
		if err == nil {
			updated.ReserveX, err = types.SubUint64(pool.ReserveX, res.Withdraw)
		}
	} else {
		updated.ReserveX, err = types.AddUint64(pool.ReserveX, res.Deposit)
		if err == nil {
			updated.ReserveY, err = types.SubUint64(pool.ReserveY, res.Withdraw)
		}
	}
	if err != nil {
		return types.SwapResult{}, err
	}

	vault := pool.VaultAddress()
	err = k.settle(ctx, func(cacheCtx context.Context) error {
		if err := k.ledger.Transfer(cacheCtx, res.InputAsset, trader, vault, res.Deposit); err != nil {
			return err
		}
		return k.ledger.Transfer(cacheCtx, res.OutputAsset, vault, trader, res.Withdraw)
	})
	if err != nil {
		k.metrics.SwapsTotal.WithLabelValues(pool.ID.String(), trade.direction, "failed").Inc()
		return types.SwapResult{}, err
	}

	k.SetPool(ctx, updated)
	k.SetPriceWindow(ctx, pool.ID, trade.window)

	label := pool.ID.String()
	k.metrics.SwapsTotal.WithLabelValues(label, trade.direction, "success").Inc()
	emitSwapTelemetry(trade.direction, res.Deposit, res.Withdraw, res.Clamped)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPool, label),
			sdk.NewAttribute(types.AttributeKeyCaller, trader.String()),
			sdk.NewAttribute(types.AttributeKeyAssetIn, res.InputAsset),
			sdk.NewAttribute(types.AttributeKeyAssetOut, res.OutputAsset),
			sdk.NewAttribute(types.AttributeKeyAmountIn, strconv.FormatUint(res.Deposit, 10)),
			sdk.NewAttribute(types.AttributeKeyAmountOut, strconv.FormatUint(res.Withdraw, 10)),
			sdk.NewAttribute(types.AttributeKeyEffectivePrice, res.EffectivePrice.String()),
			sdk.NewAttribute(types.AttributeKeyWindow, strconv.FormatUint(res.WindowID, 10)),
		),
	)

	if res.Clamped {
		k.metrics.RatchetClamps.WithLabelValues(label, trade.direction).Inc()
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypePriceClamped,
				sdk.NewAttribute(types.AttributeKeyPool, label),
				sdk.NewAttribute(types.AttributeKeyQuotedOut, strconv.FormatUint(res.QuotedWithdraw, 10)),
				sdk.NewAttribute(types.AttributeKeyAmountOut, strconv.FormatUint(res.Withdraw, 10)),
				sdk.NewAttribute(types.AttributeKeyQuotedPrice, res.QuotedPrice.String()),
				sdk.NewAttribute(types.AttributeKeyEffectivePrice, res.EffectivePrice.String()),
			),
		)
		k.Logger(ctx).Info("swap clamped to window ceiling",
			"pool", label,
			"window", res.WindowID,
			"direction", trade.direction,
			"quoted_out", res.QuotedWithdraw,
			"paid_out", res.Withdraw,
		)
	}

	k.Logger(ctx).Debug("swap executed",
		"pool", label,
		"trader", trader.String(),
		"in", res.Deposit,
		"out", res.Withdraw,
		"price", res.EffectivePrice.String(),
	)

	return res, nil
}

// SimulateSwap returns what Swap would settle right now without moving value
// or touching the price window.
func (k Keeper) SimulateSwap(ctx context.Context, id types.PoolID, inputAsset string, amountIn, minAmountOut uint64) (types.SwapResult, error) {
	pool, err := k.loadActivePool(ctx, id)
	if err != nil {
		return types.SwapResult{}, err
	}
	res, _, err := k.quote(ctx, pool, inputAsset, amountIn, minAmountOut)
	return res, err
}

type pendingTrade struct {
	buyingX   bool
	direction string
	window    types.PriceWindow
}

// quote runs validation, the curve and the ratchet for a swap on pool.
func (k Keeper) quote(ctx context.Context, pool types.Pool, inputAsset string, amountIn, minAmountOut uint64) (types.SwapResult, pendingTrade, error) {
	if amountIn == 0 || minAmountOut == 0 {
		return types.SwapResult{}, pendingTrade{}, types.ErrZeroBalance.Wrap("swap amount and minimum output must be positive")
	}

	reserveIn, reserveOut, outputAsset, buyingX, err := pool.SwapSide(inputAsset)
	if err != nil {
		return types.SwapResult{}, pendingTrade{}, err
	}
	trade := pendingTrade{buyingX: buyingX, direction: direction(buyingX)}

	q, err := types.QuoteSwap(reserveIn, reserveOut, pool.LPSupply, pool.FeeBps, amountIn, minAmountOut)
	if err != nil {
		return types.SwapResult{}, trade, err
	}

	window, err := k.GetPriceWindow(ctx, pool.ID)
	if err != nil {
		return types.SwapResult{}, trade, err
	}
	windowID := k.clock.CurrentWindowID(ctx)

	r, err := types.ApplyRatchet(window, types.RatchetInput{
		WindowID:     windowID,
		BuyingX:      buyingX,
		Quote:        q,
		ReserveIn:    reserveIn,
		ReserveOut:   reserveOut,
		MinAmountOut: minAmountOut,
		Precision:    pool.Precision,
	})
	if err != nil {
		return types.SwapResult{}, trade, err
	}
	trade.window = r.Window

	return types.SwapResult{
		InputAsset:     inputAsset,
		OutputAsset:    outputAsset,
		Deposit:        r.Deposit,
		Withdraw:       r.Withdraw,
		QuotedWithdraw: q.Withdraw,
		QuotedPrice:    r.QuotedPrice,
		EffectivePrice: r.EffectivePrice,
		Clamped:        r.Clamped,
		WindowID:       windowID,
	}, trade, nil
}
