package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

func price(raw uint64) types.FixedPrice { return types.FixedPriceFromUint64(raw) }

func quote(t *testing.T, reserveIn, reserveOut, amountIn uint64) types.SwapQuote {
	t.Helper()
	q, err := types.QuoteSwap(reserveIn, reserveOut, 1000, 30, amountIn, 1)
	require.NoError(t, err)
	return q
}

func TestApplyRatchet_FirstTradeSetsBothCeilings(t *testing.T) {
	in := types.RatchetInput{
		WindowID:     0,
		BuyingX:      false,
		Quote:        quote(t, 1000, 2000, 100),
		ReserveIn:    1000,
		ReserveOut:   2000,
		MinAmountOut: 1,
		Precision:    types.DefaultPrecision,
	}
	res, err := types.ApplyRatchet(types.NewPriceWindow(), in)
	require.NoError(t, err)

	require.False(t, res.Clamped)
	require.False(t, res.Reset)
	require.Equal(t, uint64(100), res.Deposit)
	require.Equal(t, uint64(180), res.Withdraw)
	require.True(t, res.Window.BuyingYCeiling.Equal(types.SomeCeiling(price(555555))))
	require.True(t, res.Window.BuyingXCeiling.Equal(types.SomeCeiling(price(2000000))))
}

func TestApplyRatchet_NewWindowResets(t *testing.T) {
	old := types.PriceWindow{
		WindowID:       3,
		BuyingXCeiling: types.SomeCeiling(price(9999999)),
		BuyingYCeiling: types.SomeCeiling(price(9999999)),
	}
	in := types.RatchetInput{
		WindowID:     4,
		BuyingX:      false,
		Quote:        quote(t, 1000, 2000, 100),
		ReserveIn:    1000,
		ReserveOut:   2000,
		MinAmountOut: 1,
		Precision:    types.DefaultPrecision,
	}
	res, err := types.ApplyRatchet(old, in)
	require.NoError(t, err)

	require.True(t, res.Reset)
	require.False(t, res.Clamped)
	require.Equal(t, uint64(4), res.Window.WindowID)
	require.Equal(t, uint64(180), res.Withdraw)
	require.True(t, res.Window.BuyingYCeiling.Equal(types.SomeCeiling(price(555555))))
	require.True(t, res.Window.BuyingXCeiling.Equal(types.SomeCeiling(price(2000000))))

	// The input window is left untouched.
	require.Equal(t, uint64(3), old.WindowID)
	require.True(t, old.BuyingYCeiling.Equal(types.SomeCeiling(price(9999999))))
}

func TestApplyRatchet_WorsePriceAdvancesCeiling(t *testing.T) {
	w := types.PriceWindow{
		WindowID:       0,
		BuyingXCeiling: types.SomeCeiling(price(2000000)),
		BuyingYCeiling: types.SomeCeiling(price(555555)),
	}
	// Y -> X 400 against (X 1100, Y 1820): curve pays 197 X.
	in := types.RatchetInput{
		BuyingX:      true,
		Quote:        quote(t, 1820, 1100, 400),
		ReserveIn:    1820,
		ReserveOut:   1100,
		MinAmountOut: 1,
		Precision:    types.DefaultPrecision,
	}
	res, err := types.ApplyRatchet(w, in)
	require.NoError(t, err)

	require.False(t, res.Clamped)
	require.Equal(t, uint64(197), res.Withdraw)
	require.Equal(t, "2030456", res.EffectivePrice.String())
	require.True(t, res.Window.BuyingXCeiling.Equal(types.SomeCeiling(price(2030456))))
	require.True(t, res.Window.BuyingYCeiling.Equal(types.SomeCeiling(price(555555))))
}

func TestApplyRatchet_BetterPriceIsClamped(t *testing.T) {
	w := types.PriceWindow{
		WindowID:       0,
		BuyingXCeiling: types.SomeCeiling(price(2030456)),
		BuyingYCeiling: types.SomeCeiling(price(555555)),
	}
	// X -> Y 100 against (X 903, Y 2220): curve pays 219 Y at 456621.
	q := quote(t, 903, 2220, 100)
	require.Equal(t, uint64(219), q.Withdraw)

	in := types.RatchetInput{
		BuyingX:      false,
		Quote:        q,
		ReserveIn:    903,
		ReserveOut:   2220,
		MinAmountOut: 1,
		Precision:    types.DefaultPrecision,
	}
	res, err := types.ApplyRatchet(w, in)
	require.NoError(t, err)

	require.True(t, res.Clamped)
	require.Equal(t, "456621", res.QuotedPrice.String())
	require.Equal(t, "555555", res.EffectivePrice.String())
	require.Equal(t, uint64(180), res.Withdraw)
	require.True(t, res.Window.BuyingYCeiling.Equal(types.SomeCeiling(price(555555))))

	in.MinAmountOut = 200
	_, err = types.ApplyRatchet(w, in)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
}

func TestApplyRatchet_EqualPriceUnchanged(t *testing.T) {
	w := types.PriceWindow{
		BuyingXCeiling: types.SomeCeiling(price(2000000)),
		BuyingYCeiling: types.SomeCeiling(price(555555)),
	}
	in := types.RatchetInput{
		Quote:        types.SwapQuote{Deposit: 100, Withdraw: 180},
		ReserveIn:    1000,
		ReserveOut:   2000,
		MinAmountOut: 1,
		Precision:    types.DefaultPrecision,
	}
	res, err := types.ApplyRatchet(w, in)
	require.NoError(t, err)
	require.False(t, res.Clamped)
	require.Equal(t, uint64(180), res.Withdraw)
	require.Equal(t, w, res.Window)
}

func TestApplyRatchet_ClampToZeroFails(t *testing.T) {
	w := types.PriceWindow{
		BuyingXCeiling: types.SomeCeiling(price(1)),
		BuyingYCeiling: types.SomeCeiling(price(1000000000)),
	}
	// 1 in for 1 out prices at 10^6; a 10^9 ceiling pays 0.
	in := types.RatchetInput{
		Quote:        types.SwapQuote{Deposit: 1, Withdraw: 1},
		ReserveIn:    1000,
		ReserveOut:   1000,
		MinAmountOut: 0,
		Precision:    types.DefaultPrecision,
	}
	_, err := types.ApplyRatchet(w, in)
	require.ErrorIs(t, err, types.ErrZeroBalance)
}

func TestApplyRatchet_ZeroQuote(t *testing.T) {
	in := types.RatchetInput{
		Quote:      types.SwapQuote{Deposit: 100, Withdraw: 0},
		ReserveIn:  1000,
		ReserveOut: 1000,
		Precision:  types.DefaultPrecision,
	}
	_, err := types.ApplyRatchet(types.NewPriceWindow(), in)
	require.ErrorIs(t, err, types.ErrZeroBalance)
}

func TestApplyRatchet_InvalidPrecision(t *testing.T) {
	in := types.RatchetInput{
		Quote:      types.SwapQuote{Deposit: 100, Withdraw: 180},
		ReserveIn:  1000,
		ReserveOut: 2000,
		Precision:  types.MaxPrecision + 1,
	}
	_, err := types.ApplyRatchet(types.NewPriceWindow(), in)
	require.ErrorIs(t, err, types.ErrInvalidPrecision)
}
