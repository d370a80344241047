package types

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// Checked arithmetic confined to 128 bits. Every helper reports the exact
// failure kind instead of wrapping or truncating.

var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// MaxUint128 returns 2^128 - 1.
func MaxUint128() sdkmath.Uint {
	return sdkmath.NewUintFromBigInt(maxUint128)
}

func fits128(x *big.Int) bool {
	return x.Sign() >= 0 && x.Cmp(maxUint128) <= 0
}

// PowTen returns 10^precision, failing with ErrInvalidPrecision when the
// result does not fit in 128 bits.
func PowTen(precision uint8) (sdkmath.Uint, error) {
	if precision > MaxPrecision {
		return sdkmath.Uint{}, ErrInvalidPrecision.Wrapf("10^%d exceeds 128 bits", precision)
	}
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(precision)), nil)
	return sdkmath.NewUintFromBigInt(p), nil
}

// MulDiv computes floor(a * b / c) with a 128-bit intermediate.
func MulDiv(a, b, c sdkmath.Uint) (sdkmath.Uint, error) {
	if c.IsZero() {
		return sdkmath.Uint{}, ErrZeroBalance.Wrap("division by zero")
	}
	product := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if !fits128(product) {
		return sdkmath.Uint{}, ErrOverflow.Wrapf("%s * %s exceeds 128 bits", a, b)
	}
	return sdkmath.NewUintFromBigInt(product.Quo(product, c.BigInt())), nil
}

// ToUint64 narrows a 128-bit value, failing with ErrOverflow when it does not fit.
func ToUint64(x sdkmath.Uint) (uint64, error) {
	b := x.BigInt()
	if !b.IsUint64() {
		return 0, ErrOverflow.Wrapf("%s exceeds 64 bits", x)
	}
	return b.Uint64(), nil
}

// AddUint64 adds two amounts, failing with ErrOverflow on wrap-around.
func AddUint64(a, b uint64) (uint64, error) {
	if a > ^uint64(0)-b {
		return 0, ErrOverflow.Wrapf("%d + %d exceeds 64 bits", a, b)
	}
	return a + b, nil
}

// SubUint64 subtracts b from a, failing with ErrUnderflow when b > a.
func SubUint64(a, b uint64) (uint64, error) {
	if b > a {
		return 0, ErrUnderflow.Wrapf("cannot subtract %d from %d", b, a)
	}
	return a - b, nil
}

// mulDiv64 is MulDiv over 64-bit operands.
func mulDiv64(a, b, c uint64) (sdkmath.Uint, error) {
	return MulDiv(sdkmath.NewUint(a), sdkmath.NewUint(b), sdkmath.NewUint(c))
}
