package types

import (
	"fmt"
)

// PoolState pairs a pool record with its price window for import and export.
type PoolState struct {
	Pool   Pool        `json:"pool"`
	Window PriceWindow `json:"window"`
}

// GenesisState defines the fairswap module's genesis state.
type GenesisState struct {
	Pools []PoolState `json:"pools"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{Pools: []PoolState{}}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Pools))
	for i, ps := range gs.Pools {
		if err := ps.Pool.Validate(); err != nil {
			return fmt.Errorf("pool %d: %w", i, err)
		}
		if err := ps.Window.Validate(); err != nil {
			return fmt.Errorf("pool %d window: %w", i, err)
		}
		key := string(ps.Pool.ID.Bytes())
		if _, ok := seen[key]; ok {
			return ErrPoolAlreadyExists.Wrapf("duplicate pool %s in genesis", ps.Pool.ID)
		}
		seen[key] = struct{}{}
	}
	return nil
}
