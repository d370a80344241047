package keeper

import (
	"strconv"
	"sync"

	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/hashicorp/go-metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

// Metrics holds the Prometheus collectors for the fairswap module
type Metrics struct {
	SwapsTotal       *prometheus.CounterVec
	RatchetClamps    *prometheus.CounterVec
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	PoolReserves     *prometheus.GaugeVec
	LPTokenSupply    *prometheus.GaugeVec
	PoolLocked       *prometheus.GaugeVec
}

var (
	metricsOnce   sync.Once
	moduleMetrics *Metrics
)

// GetMetrics creates and registers the module metrics once per process.
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		moduleMetrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "fairswap",
					Name:      "swaps_total",
					Help:      "Swaps processed by direction and outcome",
				},
				[]string{"pool", "direction", "status"},
			),
			RatchetClamps: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "fairswap",
					Name:      "ratchet_clamps_total",
					Help:      "Swaps whose output was clamped to the window ceiling",
				},
				[]string{"pool", "direction"},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "fairswap",
					Name:      "liquidity_added_total",
					Help:      "Reserve units deposited by liquidity providers",
				},
				[]string{"pool", "asset"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "fairswap",
					Name:      "liquidity_removed_total",
					Help:      "Reserve units withdrawn by liquidity providers",
				},
				[]string{"pool", "asset"},
			),
			PoolReserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "fairswap",
					Name:      "pool_reserves",
					Help:      "Current pool reserves",
				},
				[]string{"pool", "asset"},
			),
			LPTokenSupply: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "fairswap",
					Name:      "lp_token_supply",
					Help:      "LP token supply per pool",
				},
				[]string{"pool"},
			),
			PoolLocked: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "fairswap",
					Name:      "pool_locked",
					Help:      "Pool lock state (0=unlocked, 1=locked)",
				},
				[]string{"pool"},
			),
		}
	})
	return moduleMetrics
}

// emitSwapTelemetry forwards a settled swap to the SDK telemetry sink.
func emitSwapTelemetry(dir string, amountIn, amountOut uint64, clamped bool) {
	labels := []metrics.Label{
		telemetry.NewLabel("direction", dir),
		telemetry.NewLabel("clamped", strconv.FormatBool(clamped)),
	}
	telemetry.IncrCounterWithLabels([]string{types.ModuleName, "swap"}, 1, labels)
	telemetry.SetGaugeWithLabels([]string{types.ModuleName, "swap", "amount_in"}, float32(amountIn), labels)
	telemetry.SetGaugeWithLabels([]string{types.ModuleName, "swap", "amount_out"}, float32(amountOut), labels)
}

// emitLiquidityTelemetry forwards a deposit or withdrawal to the SDK telemetry sink.
func emitLiquidityTelemetry(op string, lpAmount uint64) {
	telemetry.IncrCounterWithLabels([]string{types.ModuleName, op}, 1,
		[]metrics.Label{telemetry.NewLabel("op", op)})
	telemetry.SetGauge(float32(lpAmount), types.ModuleName, op, "lp_amount")
}

func direction(buyingX bool) string {
	if buyingX {
		return "buy_x"
	}
	return "buy_y"
}
