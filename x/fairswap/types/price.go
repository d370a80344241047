package types

import (
	"encoding/json"
	"fmt"
	"math/big"

	sdkmath "cosmossdk.io/math"
)

const (
	// DefaultPrecision is the decimal exponent used by new pools.
	DefaultPrecision uint8 = 6

	// MaxPrecision is the largest exponent whose power of ten fits in 128 bits.
	MaxPrecision uint8 = 38

	// FeeDenominator is the basis point denominator for pool fees.
	FeeDenominator uint64 = 10000
)

// FixedPrice is an unsigned 128-bit fixed point quantity:
// numerator * 10^precision / denominator.
type FixedPrice struct {
	v sdkmath.Uint
}

// NewFixedPrice wraps a raw 128-bit value.
func NewFixedPrice(raw sdkmath.Uint) (FixedPrice, error) {
	if !fits128(raw.BigInt()) {
		return FixedPrice{}, ErrOverflow.Wrapf("price %s exceeds 128 bits", raw)
	}
	return FixedPrice{v: raw}, nil
}

// FixedPriceFromUint64 is a convenience constructor for small raw values.
func FixedPriceFromUint64(raw uint64) FixedPrice {
	return FixedPrice{v: sdkmath.NewUint(raw)}
}

// CalculatePrice returns numerator * 10^precision / denominator, rounded down.
func CalculatePrice(numerator, denominator uint64, precision uint8) (FixedPrice, error) {
	scale, err := PowTen(precision)
	if err != nil {
		return FixedPrice{}, err
	}
	if denominator == 0 {
		return FixedPrice{}, ErrZeroBalance.Wrap("price denominator is zero")
	}
	raw, err := MulDiv(sdkmath.NewUint(numerator), scale, sdkmath.NewUint(denominator))
	if err != nil {
		return FixedPrice{}, err
	}
	return FixedPrice{v: raw}, nil
}

// Raw returns the underlying 128-bit value.
func (p FixedPrice) Raw() sdkmath.Uint {
	if p.v.IsNil() {
		return sdkmath.ZeroUint()
	}
	return p.v
}

// Cmp compares two prices exactly: -1, 0 or +1.
func (p FixedPrice) Cmp(o FixedPrice) int {
	return p.Raw().BigInt().Cmp(o.Raw().BigInt())
}

// IsZero reports whether the price is zero.
func (p FixedPrice) IsZero() bool { return p.Raw().IsZero() }

// Bytes returns the 16-byte big-endian encoding.
func (p FixedPrice) Bytes() [16]byte {
	var out [16]byte
	p.Raw().BigInt().FillBytes(out[:])
	return out
}

// FixedPriceFromBytes decodes a 16-byte big-endian value.
func FixedPriceFromBytes(bz [16]byte) FixedPrice {
	return FixedPrice{v: sdkmath.NewUintFromBigInt(new(big.Int).SetBytes(bz[:]))}
}

func (p FixedPrice) String() string { return p.Raw().String() }

// MarshalJSON encodes the price as a decimal string.
func (p FixedPrice) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a decimal string.
func (p *FixedPrice) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	raw, err := sdkmath.ParseUint(s)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", s, err)
	}
	parsed, err := NewFixedPrice(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Ceiling is an optional FixedPrice. The zero value is unset, which is
// distinct from a set ceiling of price zero.
type Ceiling struct {
	price FixedPrice
	set   bool
}

// SomeCeiling returns a set ceiling.
func SomeCeiling(p FixedPrice) Ceiling { return Ceiling{price: p, set: true} }

// NoCeiling returns an unset ceiling.
func NoCeiling() Ceiling { return Ceiling{} }

// Get returns the price and whether the ceiling is set.
func (c Ceiling) Get() (FixedPrice, bool) { return c.price, c.set }

// IsSet reports whether the ceiling holds a price.
func (c Ceiling) IsSet() bool { return c.set }

// Equal compares presence and value.
func (c Ceiling) Equal(o Ceiling) bool {
	if c.set != o.set {
		return false
	}
	return !c.set || c.price.Cmp(o.price) == 0
}

func (c Ceiling) String() string {
	if !c.set {
		return "none"
	}
	return c.price.String()
}

// MarshalJSON encodes an unset ceiling as null.
func (c Ceiling) MarshalJSON() ([]byte, error) {
	if !c.set {
		return []byte("null"), nil
	}
	return c.price.MarshalJSON()
}

// UnmarshalJSON accepts null or a decimal string.
func (c *Ceiling) UnmarshalJSON(bz []byte) error {
	if string(bz) == "null" {
		*c = NoCeiling()
		return nil
	}
	var p FixedPrice
	if err := p.UnmarshalJSON(bz); err != nil {
		return err
	}
	*c = SomeCeiling(p)
	return nil
}
