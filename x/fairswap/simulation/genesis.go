package simulation

import (
	"encoding/json"
	"fmt"

	"github.com/cosmos/cosmos-sdk/types/module"

	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

// RandomizedGenState generates up to three empty pools with random fees,
// owned by simulation accounts.
func RandomizedGenState(simState *module.SimulationState) {
	gs := types.DefaultGenesis()
	if len(simState.Accounts) > 0 {
		n := simState.Rand.Intn(3) + 1
		for i := 0; i < n; i++ {
			acc := simState.Accounts[simState.Rand.Intn(len(simState.Accounts))]
			id := types.NewPoolID(DefaultAssetX, DefaultAssetY, uint64(i))
			fee := uint16(simState.Rand.Intn(100))
			gs.Pools = append(gs.Pools, types.PoolState{
				Pool:   types.NewPool(id, acc.Address, fee),
				Window: types.NewPriceWindow(),
			})
		}
	}

	bz, err := json.Marshal(gs)
	if err != nil {
		panic(fmt.Errorf("marshal %s genesis: %w", types.ModuleName, err))
	}
	simState.GenState[types.ModuleName] = bz
}
