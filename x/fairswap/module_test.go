package fairswap_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/fairswap-labs/fairswap/testutil/keeper"
	"github.com/fairswap-labs/fairswap/x/fairswap"
	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

func TestAppModuleGenesis(t *testing.T) {
	k, ctx, l := keepertest.FairswapKeeper(t)
	id := keepertest.CreateTestPool(t, k, ctx, l, keepertest.TestAddr("authority"), 30, 1000, 2000, 1000)
	am := fairswap.NewAppModule(k)

	basic := fairswap.AppModuleBasic{}
	require.Equal(t, types.ModuleName, basic.Name())
	require.NoError(t, basic.ValidateGenesis(nil, nil, basic.DefaultGenesis(nil)))
	require.Error(t, basic.ValidateGenesis(nil, nil, json.RawMessage(`{"pools":[{"pool":{"reserve_x":1}}]}`)))

	exported := am.ExportGenesis(ctx, nil)
	require.NoError(t, basic.ValidateGenesis(nil, nil, exported))

	k2, ctx2, _ := keepertest.FairswapKeeper(t)
	fairswap.NewAppModule(k2).InitGenesis(ctx2, nil, exported)

	pool, err := k2.GetPool(ctx2, id)
	require.NoError(t, err)
	require.Equal(t, uint64(2000), pool.ReserveY)
	require.Equal(t, keepertest.TestAddr("authority"), pool.Authority)

	require.Panics(t, func() { am.InitGenesis(ctx, nil, json.RawMessage(`not json`)) })
}
