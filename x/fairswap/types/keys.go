package types

import (
	"encoding/binary"
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "fairswap"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// LPDenomPrefix prefixes every pool's LP asset identifier
	LPDenomPrefix = ModuleName + "/lp/"
)

// Store key prefixes
var (
	PoolKeyPrefix   = []byte{0x01} // prefix for pool records
	WindowKeyPrefix = []byte{0x02} // prefix for price window records
)

// PoolID identifies a pool: an ordered asset pair plus a creator chosen salt
// that distinguishes several pools over the same pair.
type PoolID struct {
	AssetX string `json:"asset_x"`
	AssetY string `json:"asset_y"`
	Salt   uint64 `json:"salt"`
}

// NewPoolID returns a pool identity for the given pair and salt.
func NewPoolID(assetX, assetY string, salt uint64) PoolID {
	return PoolID{AssetX: assetX, AssetY: assetY, Salt: salt}
}

// Validate checks that the identity names two distinct, non-empty assets.
func (id PoolID) Validate() error {
	if strings.TrimSpace(id.AssetX) == "" || strings.TrimSpace(id.AssetY) == "" {
		return ErrInvalidPool.Wrap("asset identifiers cannot be empty")
	}
	if id.AssetX == id.AssetY {
		return ErrInvalidPool.Wrapf("pool assets must differ, got %s twice", id.AssetX)
	}
	if len(id.AssetX) > 255 || len(id.AssetY) > 255 {
		return ErrInvalidPool.Wrap("asset identifier longer than 255 bytes")
	}
	return nil
}

// Bytes returns the stable key suffix for this identity.
func (id PoolID) Bytes() []byte {
	bz := make([]byte, 0, 2+len(id.AssetX)+len(id.AssetY)+8)
	bz = append(bz, byte(len(id.AssetX)))
	bz = append(bz, id.AssetX...)
	bz = append(bz, byte(len(id.AssetY)))
	bz = append(bz, id.AssetY...)
	return binary.BigEndian.AppendUint64(bz, id.Salt)
}

// String implements fmt.Stringer.
func (id PoolID) String() string {
	return fmt.Sprintf("%s/%s/%d", id.AssetX, id.AssetY, id.Salt)
}

// VaultAddress returns the deterministic account that custodies the pool's reserves.
func (id PoolID) VaultAddress() sdk.AccAddress {
	return sdk.AccAddress(address.Module(ModuleName, id.Bytes()))
}

// LPDenom returns the identifier of the pool's LP asset.
func (id PoolID) LPDenom() string {
	return fmt.Sprintf("%s%x", LPDenomPrefix, id.VaultAddress()[:20])
}

// GetPoolKey returns the store key for a pool record
func GetPoolKey(id PoolID) []byte {
	return append(append([]byte{}, PoolKeyPrefix...), id.Bytes()...)
}

// GetWindowKey returns the store key for a pool's price window
func GetWindowKey(id PoolID) []byte {
	return append(append([]byte{}, WindowKeyPrefix...), id.Bytes()...)
}
