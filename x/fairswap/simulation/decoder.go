package simulation

import (
	"bytes"
	"fmt"

	"github.com/cosmos/cosmos-sdk/types/kv"

	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

// NewDecodeStore returns a decoder that renders two fairswap KV pairs for
// store diffs.
func NewDecodeStore() func(kvA, kvB kv.Pair) string {
	return func(kvA, kvB kv.Pair) string {
		switch {
		case bytes.HasPrefix(kvA.Key, types.PoolKeyPrefix):
			return fmt.Sprintf("%s\n%s", decodePool(kvA.Value), decodePool(kvB.Value))
		case bytes.HasPrefix(kvA.Key, types.WindowKeyPrefix):
			return fmt.Sprintf("%s\n%s", decodeWindow(kvA.Value), decodeWindow(kvB.Value))
		default:
			panic(fmt.Sprintf("invalid %s key prefix %X", types.ModuleName, kvA.Key))
		}
	}
}

func decodePool(bz []byte) string {
	p, err := types.UnmarshalPool(bz)
	if err != nil {
		return "undecodable pool: " + err.Error()
	}
	return fmt.Sprintf("pool %s reserves=(%d, %d) lp=%d fee=%d locked=%t",
		p.ID, p.ReserveX, p.ReserveY, p.LPSupply, p.FeeBps, p.Locked)
}

func decodeWindow(bz []byte) string {
	w, err := types.UnmarshalWindow(bz)
	if err != nil {
		return "undecodable window: " + err.Error()
	}
	return fmt.Sprintf("window %d buying_x=%s buying_y=%s", w.WindowID, w.BuyingXCeiling, w.BuyingYCeiling)
}
