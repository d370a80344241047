package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

// RegisterInvariants registers all fairswap invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "vault-backing", VaultBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "joint-state", JointStateInvariant(k))
	ir.RegisterRoute(types.ModuleName, "window-ceilings", WindowCeilingsInvariant(k))
}

// AllInvariants runs all invariants of the fairswap module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, inv := range []sdk.Invariant{
			VaultBackingInvariant(k),
			JointStateInvariant(k),
			WindowCeilingsInvariant(k),
		} {
			if res, stop := inv(ctx); stop {
				return res, stop
			}
		}
		return "", false
	}
}

// VaultBackingInvariant checks that every vault holds at least the pool's reserves
func VaultBackingInvariant(k Keeper) sdk.Invariant {
	return forEachPool(k, "vault-backing", func(ctx sdk.Context, pool types.Pool) string {
		vault := pool.VaultAddress()
		var msg string
		if bal := k.ledger.Balance(ctx, pool.ID.AssetX, vault); bal < pool.ReserveX {
			msg += fmt.Sprintf("pool %s: vault %s balance %d < reserve %d\n", pool.ID, pool.ID.AssetX, bal, pool.ReserveX)
		}
		if bal := k.ledger.Balance(ctx, pool.ID.AssetY, vault); bal < pool.ReserveY {
			msg += fmt.Sprintf("pool %s: vault %s balance %d < reserve %d\n", pool.ID, pool.ID.AssetY, bal, pool.ReserveY)
		}
		return msg
	})
}

// JointStateInvariant checks that reserves and LP supply are all zero or all positive
func JointStateInvariant(k Keeper) sdk.Invariant {
	return forEachPool(k, "joint-state", func(_ sdk.Context, pool types.Pool) string {
		if err := pool.Validate(); err != nil {
			return fmt.Sprintf("pool %s: %v\n", pool.ID, err)
		}
		return ""
	})
}

// WindowCeilingsInvariant checks that a window which has seen a trade carries both ceilings
func WindowCeilingsInvariant(k Keeper) sdk.Invariant {
	return forEachPool(k, "window-ceilings", func(ctx sdk.Context, pool types.Pool) string {
		w, err := k.GetPriceWindow(ctx, pool.ID)
		if err != nil {
			return fmt.Sprintf("pool %s: %v\n", pool.ID, err)
		}
		if err := w.Validate(); err != nil {
			return fmt.Sprintf("pool %s: %v\n", pool.ID, err)
		}
		return ""
	})
}

func forEachPool(k Keeper, route string, check func(sdk.Context, types.Pool) string) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		err := k.IteratePools(ctx, func(pool types.Pool) bool {
			if m := check(ctx, pool); m != "" {
				msg += m
				count++
			}
			return false
		})
		if err != nil {
			msg += err.Error() + "\n"
			count++
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, route,
			fmt.Sprintf("found %d violations\n%s", count, msg),
		), broken
	}
}
