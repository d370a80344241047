package types

import (
	sdkmath "cosmossdk.io/math"
)

// SwapQuote is the curve's answer for a swap before the price ratchet runs.
type SwapQuote struct {
	Deposit  uint64 `json:"deposit"`
	Withdraw uint64 `json:"withdraw"`
}

// LiquidityAmounts holds the per-asset amounts moved by a deposit or withdrawal.
type LiquidityAmounts struct {
	X uint64 `json:"x"`
	Y uint64 `json:"y"`
}

// ValidateFee checks a basis point fee.
func ValidateFee(feeBps uint16) error {
	if uint64(feeBps) >= FeeDenominator {
		return ErrInvalidFeeSet.Wrapf("fee %d bps must be below %d", feeBps, FeeDenominator)
	}
	return nil
}

// ValidatePrecision checks that 10^precision is representable.
func ValidatePrecision(precision uint8) error {
	_, err := PowTen(precision)
	return err
}

// AmountAfterFee returns amountIn * (10000 - feeBps) / 10000, rounded down.
func AmountAfterFee(amountIn uint64, feeBps uint16) (uint64, error) {
	if uint64(feeBps) >= FeeDenominator {
		return 0, ErrInvalidFee.Wrapf("fee %d bps", feeBps)
	}
	net, err := mulDiv64(amountIn, FeeDenominator-uint64(feeBps), FeeDenominator)
	if err != nil {
		return 0, err
	}
	return ToUint64(net)
}

// QuoteSwap prices a swap on the constant product curve
//
//	(reserveIn + in') * (reserveOut - withdraw) = reserveIn * reserveOut
//
// solved for withdraw and rounded down, where in' is amountIn net of fee.
func QuoteSwap(reserveIn, reserveOut, lpSupply uint64, feeBps uint16, amountIn, minAmountOut uint64) (SwapQuote, error) {
	if reserveIn == 0 || reserveOut == 0 || lpSupply == 0 {
		return SwapQuote{}, ErrZeroBalance.Wrap("pool reserves and LP supply must be positive")
	}
	if amountIn == 0 {
		return SwapQuote{}, ErrZeroBalance.Wrap("swap amount must be positive")
	}

	net, err := AmountAfterFee(amountIn, feeBps)
	if err != nil {
		return SwapQuote{}, err
	}

	denominator := sdkmath.NewUint(reserveIn).Add(sdkmath.NewUint(net))
	if !fits128(denominator.BigInt()) {
		return SwapQuote{}, ErrOverflow.Wrap("reserve plus input exceeds 128 bits")
	}
	out, err := MulDiv(sdkmath.NewUint(reserveOut), sdkmath.NewUint(net), denominator)
	if err != nil {
		return SwapQuote{}, err
	}
	withdraw, err := ToUint64(out)
	if err != nil {
		return SwapQuote{}, err
	}
	if withdraw > reserveOut {
		return SwapQuote{}, ErrUnderflow.Wrapf("output %d exceeds reserve %d", withdraw, reserveOut)
	}
	if withdraw < minAmountOut {
		return SwapQuote{}, ErrSlippageExceeded.Wrapf("curve output %d below minimum %d", withdraw, minAmountOut)
	}

	return SwapQuote{Deposit: amountIn, Withdraw: withdraw}, nil
}

// DepositAmountsFromLP returns the reserve amounts a depositor owes for lpAmount
// new LP tokens. The bootstrap case (lpSupply == 0) belongs to the caller.
func DepositAmountsFromLP(reserveX, reserveY, lpSupply, lpAmount uint64, precision uint8) (LiquidityAmounts, error) {
	return proportionalAmounts(reserveX, reserveY, lpSupply, lpAmount, precision)
}

// WithdrawAmountsFromLP returns the reserve amounts paid out for burning lpAmount
// LP tokens, rounded down so remaining LPs are never diluted.
func WithdrawAmountsFromLP(reserveX, reserveY, lpSupply, lpAmount uint64, precision uint8) (LiquidityAmounts, error) {
	return proportionalAmounts(reserveX, reserveY, lpSupply, lpAmount, precision)
}

func proportionalAmounts(reserveX, reserveY, lpSupply, lpAmount uint64, precision uint8) (LiquidityAmounts, error) {
	if err := ValidatePrecision(precision); err != nil {
		return LiquidityAmounts{}, err
	}
	if lpSupply == 0 {
		return LiquidityAmounts{}, ErrZeroBalance.Wrap("LP supply is zero")
	}

	x, err := mulDiv64(lpAmount, reserveX, lpSupply)
	if err != nil {
		return LiquidityAmounts{}, err
	}
	y, err := mulDiv64(lpAmount, reserveY, lpSupply)
	if err != nil {
		return LiquidityAmounts{}, err
	}

	x64, err := ToUint64(x)
	if err != nil {
		return LiquidityAmounts{}, err
	}
	y64, err := ToUint64(y)
	if err != nil {
		return LiquidityAmounts{}, err
	}
	return LiquidityAmounts{X: x64, Y: y64}, nil
}
