package types

import (
	sdkmath "cosmossdk.io/math"
)

// RatchetInput is the trade the ratchet judges against a window.
type RatchetInput struct {
	// WindowID is the clock reading for this call.
	WindowID uint64
	// BuyingX is true when the trader pays Y to receive X.
	BuyingX bool
	// Quote is the curve's unclamped result.
	Quote SwapQuote
	// ReserveIn and ReserveOut are the pre-trade reserves on each side.
	ReserveIn  uint64
	ReserveOut uint64
	// MinAmountOut is the trader's slippage bound.
	MinAmountOut uint64
	Precision    uint8
}

// RatchetResult is the final trade and the window to persist if it lands.
type RatchetResult struct {
	Window         PriceWindow
	Deposit        uint64
	Withdraw       uint64
	QuotedPrice    FixedPrice
	EffectivePrice FixedPrice
	Clamped        bool
	Reset          bool
}

// ApplyRatchet bounds a quoted trade by the worst price already granted to
// buyers of the same asset in the current window. The input window is not
// modified; the caller persists RatchetResult.Window only after the trade
// settles.
func ApplyRatchet(window PriceWindow, in RatchetInput) (RatchetResult, error) {
	if in.Quote.Deposit == 0 || in.Quote.Withdraw == 0 {
		return RatchetResult{}, ErrZeroBalance.Wrap("quote moves a zero amount")
	}

	current, err := CalculatePrice(in.Quote.Deposit, in.Quote.Withdraw, in.Precision)
	if err != nil {
		return RatchetResult{}, err
	}

	res := RatchetResult{Window: window, QuotedPrice: current, EffectivePrice: current}

	// The opposite side is seeded from the pre-trade spot price it would
	// pay: reserveOut per unit of reserveIn.
	seedOpposite := func() error {
		spot, err := CalculatePrice(in.ReserveOut, in.ReserveIn, in.Precision)
		if err != nil {
			return err
		}
		res.Window.SetCeiling(!in.BuyingX, SomeCeiling(spot))
		return nil
	}

	if in.WindowID != window.WindowID {
		res.Window.WindowID = in.WindowID
		res.Window.SetCeiling(in.BuyingX, SomeCeiling(current))
		if err := seedOpposite(); err != nil {
			return RatchetResult{}, err
		}
		res.Reset = true
	}

	ceiling, ok := res.Window.Ceiling(in.BuyingX).Get()
	switch {
	case !ok:
		// First trade of a window that was never reset (a fresh pool traded
		// at its initial window id).
		res.Window.SetCeiling(in.BuyingX, SomeCeiling(current))
		if !res.Window.Ceiling(!in.BuyingX).IsSet() {
			if err := seedOpposite(); err != nil {
				return RatchetResult{}, err
			}
		}
	case current.Cmp(ceiling) > 0:
		res.Window.SetCeiling(in.BuyingX, SomeCeiling(current))
	case current.Cmp(ceiling) < 0:
		res.EffectivePrice = ceiling
		res.Clamped = true
	}

	scale, err := PowTen(in.Precision)
	if err != nil {
		return RatchetResult{}, err
	}
	if res.EffectivePrice.IsZero() {
		return RatchetResult{}, ErrZeroBalance.Wrap("effective price is zero")
	}
	out, err := MulDiv(sdkmath.NewUint(in.Quote.Deposit), scale, res.EffectivePrice.Raw())
	if err != nil {
		return RatchetResult{}, err
	}
	withdraw, err := ToUint64(out)
	if err != nil {
		return RatchetResult{}, err
	}
	// Flooring the price can only push the recomputed output up; never pay
	// more than the curve quoted.
	if withdraw > in.Quote.Withdraw {
		withdraw = in.Quote.Withdraw
	}

	if withdraw < in.MinAmountOut {
		return RatchetResult{}, ErrSlippageExceeded.Wrapf("clamped output %d below minimum %d", withdraw, in.MinAmountOut)
	}
	if withdraw == 0 {
		return RatchetResult{}, ErrZeroBalance.Wrap("clamped output is zero")
	}

	res.Deposit = in.Quote.Deposit
	res.Withdraw = withdraw
	return res, nil
}
