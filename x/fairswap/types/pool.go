package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Pool is the persisted state of one two-asset pool. Reserves mirror the
// vault balances held by the Ledger.
type Pool struct {
	ID        PoolID         `json:"id"`
	Authority sdk.AccAddress `json:"authority"`
	ReserveX  uint64         `json:"reserve_x"`
	ReserveY  uint64         `json:"reserve_y"`
	LPSupply  uint64         `json:"lp_supply"`
	FeeBps    uint16         `json:"fee_bps"`
	Locked    bool           `json:"locked"`
	Precision uint8          `json:"precision"`
}

// NewPool returns a freshly initialized, empty and unlocked pool.
func NewPool(id PoolID, authority sdk.AccAddress, feeBps uint16) Pool {
	return Pool{
		ID:        id,
		Authority: authority,
		FeeBps:    feeBps,
		Precision: DefaultPrecision,
	}
}

// IsBootstrap reports whether the pool holds no reserves and no LP supply yet.
func (p Pool) IsBootstrap() bool {
	return p.ReserveX == 0 && p.ReserveY == 0 && p.LPSupply == 0
}

// Validate checks identity, fee, precision and that reserves and supply are
// either all zero or all positive.
func (p Pool) Validate() error {
	if err := p.ID.Validate(); err != nil {
		return err
	}
	if len(p.Authority) > 255 {
		return ErrInvalidPool.Wrap("authority address longer than 255 bytes")
	}
	if err := ValidateFee(p.FeeBps); err != nil {
		return err
	}
	if err := ValidatePrecision(p.Precision); err != nil {
		return err
	}
	if !p.IsBootstrap() && (p.ReserveX == 0 || p.ReserveY == 0 || p.LPSupply == 0) {
		return ErrInvalidState.Wrapf("pool %s: reserves (%d, %d) and supply %d must be jointly positive",
			p.ID, p.ReserveX, p.ReserveY, p.LPSupply)
	}
	return nil
}

// SwapSide resolves the direction of a swap paying inputAsset.
// buyingX is true when the trader pays Y and receives X.
func (p Pool) SwapSide(inputAsset string) (reserveIn, reserveOut uint64, outputAsset string, buyingX bool, err error) {
	switch inputAsset {
	case p.ID.AssetX:
		return p.ReserveX, p.ReserveY, p.ID.AssetY, false, nil
	case p.ID.AssetY:
		return p.ReserveY, p.ReserveX, p.ID.AssetX, true, nil
	default:
		return 0, 0, "", false, ErrInvalidInputMint.Wrapf("%s is not an asset of pool %s", inputAsset, p.ID)
	}
}

// VaultAddress returns the account holding the pool's reserves.
func (p Pool) VaultAddress() sdk.AccAddress { return p.ID.VaultAddress() }

// LPDenom returns the pool's LP asset identifier.
func (p Pool) LPDenom() string { return p.ID.LPDenom() }
