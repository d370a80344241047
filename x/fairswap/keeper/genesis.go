package keeper

import (
	"context"
	"fmt"

	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

// InitGenesis initializes the fairswap module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid genesis: %w", err)
	}
	for _, ps := range genState.Pools {
		k.SetPool(ctx, ps.Pool)
		k.SetPriceWindow(ctx, ps.Pool.ID, ps.Window)
	}
	return nil
}

// ExportGenesis returns the fairswap module's exported genesis
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()
	var werr error
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		w, err := k.GetPriceWindow(ctx, pool.ID)
		if err != nil {
			werr = err
			return true
		}
		gs.Pools = append(gs.Pools, types.PoolState{Pool: pool, Window: w})
		return false
	})
	if err != nil {
		return nil, err
	}
	if werr != nil {
		return nil, werr
	}
	return gs, nil
}
