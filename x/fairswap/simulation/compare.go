package simulation

import (
	"fmt"

	"cosmossdk.io/log"

	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

const (
	DefaultAssetX = "tokenx"
	DefaultAssetY = "tokeny"

	providerName = "provider"
)

// Scenario describes a pool and a sequence of trades to replay on it.
type Scenario struct {
	AssetX   string  `mapstructure:"asset_x" json:"asset_x" yaml:"asset_x"`
	AssetY   string  `mapstructure:"asset_y" json:"asset_y" yaml:"asset_y"`
	FeeBps   uint16  `mapstructure:"fee_bps" json:"fee_bps" yaml:"fee_bps"`
	ReserveX uint64  `mapstructure:"reserve_x" json:"reserve_x" yaml:"reserve_x"`
	ReserveY uint64  `mapstructure:"reserve_y" json:"reserve_y" yaml:"reserve_y"`
	LPAmount uint64  `mapstructure:"lp_amount" json:"lp_amount" yaml:"lp_amount"`
	Trades   []Trade `mapstructure:"trades" json:"trades" yaml:"trades"`
}

// Trade is one swap in a scenario. Input is "x" or "y".
type Trade struct {
	Window   uint64 `mapstructure:"window" json:"window" yaml:"window"`
	Trader   string `mapstructure:"trader" json:"trader" yaml:"trader"`
	Input    string `mapstructure:"input" json:"input" yaml:"input"`
	AmountIn uint64 `mapstructure:"amount_in" json:"amount_in" yaml:"amount_in"`
	MinOut   uint64 `mapstructure:"min_out" json:"min_out" yaml:"min_out"`
}

// TradeOutcome is what each pool paid for one trade. An error string means
// the pool rejected the trade and its state did not move.
type TradeOutcome struct {
	Index     int    `json:"index" yaml:"index"`
	Window    uint64 `json:"window" yaml:"window"`
	Trader    string `json:"trader" yaml:"trader"`
	Input     string `json:"input" yaml:"input"`
	AmountIn  uint64 `json:"amount_in" yaml:"amount_in"`
	FairOut   uint64 `json:"fair_out" yaml:"fair_out"`
	NormalOut uint64 `json:"normal_out" yaml:"normal_out"`
	Clamped   bool   `json:"clamped" yaml:"clamped"`
	FairErr   string `json:"fair_error,omitempty" yaml:"fair_error,omitempty"`
	NormalErr string `json:"normal_error,omitempty" yaml:"normal_error,omitempty"`
}

// Report is the result of Compare.
type Report struct {
	Trades         []TradeOutcome `json:"trades" yaml:"trades"`
	FairTotalOut   uint64         `json:"fair_total_out" yaml:"fair_total_out"`
	NormalTotalOut uint64         `json:"normal_total_out" yaml:"normal_total_out"`
	FairReserveX   uint64         `json:"fair_reserve_x" yaml:"fair_reserve_x"`
	FairReserveY   uint64         `json:"fair_reserve_y" yaml:"fair_reserve_y"`
	NormalReserveX uint64         `json:"normal_reserve_x" yaml:"normal_reserve_x"`
	NormalReserveY uint64         `json:"normal_reserve_y" yaml:"normal_reserve_y"`
}

func (s *Scenario) applyDefaults() {
	if s.AssetX == "" {
		s.AssetX = DefaultAssetX
	}
	if s.AssetY == "" {
		s.AssetY = DefaultAssetY
	}
	if s.LPAmount == 0 {
		s.LPAmount = s.ReserveX
	}
}

// Validate checks the scenario before any state is built.
func (s Scenario) Validate() error {
	if err := types.ValidateFee(s.FeeBps); err != nil {
		return err
	}
	if s.ReserveX == 0 || s.ReserveY == 0 {
		return fmt.Errorf("initial reserves must be positive")
	}
	var last uint64
	for i, t := range s.Trades {
		if t.Input != "x" && t.Input != "y" {
			return fmt.Errorf("trade %d: input must be x or y, got %q", i, t.Input)
		}
		if t.Window < last {
			return fmt.Errorf("trade %d: window %d precedes window %d", i, t.Window, last)
		}
		last = t.Window
	}
	return nil
}

// Compare replays the scenario on a fairswap pool and on a plain constant
// product pool with the same starting state.
func Compare(s Scenario, logger log.Logger) (Report, error) {
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return Report{}, err
	}

	h, err := NewHarness(logger)
	if err != nil {
		return Report{}, err
	}

	id := types.NewPoolID(s.AssetX, s.AssetY, 0)
	provider := AccountAddress(providerName)
	if err := h.Fund(provider, s.AssetX, s.ReserveX); err != nil {
		return Report{}, err
	}
	if err := h.Fund(provider, s.AssetY, s.ReserveY); err != nil {
		return Report{}, err
	}
	if _, err := h.Keeper.Initialize(h.Ctx, provider, id, s.FeeBps); err != nil {
		return Report{}, fmt.Errorf("initialize pool: %w", err)
	}
	if _, err := h.Keeper.Deposit(h.Ctx, provider, id, s.LPAmount, s.ReserveX, s.ReserveY); err != nil {
		return Report{}, fmt.Errorf("bootstrap deposit: %w", err)
	}

	normal := &NormalPool{ReserveX: s.ReserveX, ReserveY: s.ReserveY, LPSupply: s.LPAmount, FeeBps: s.FeeBps}

	var report Report
	for i, t := range s.Trades {
		if err := h.AtWindow(t.Window); err != nil {
			return Report{}, err
		}
		trader := AccountAddress(t.Trader)
		inputAsset := s.AssetX
		if t.Input == "y" {
			inputAsset = s.AssetY
		}
		minOut := t.MinOut
		if minOut == 0 {
			minOut = 1
		}

		outcome := TradeOutcome{Index: i, Window: t.Window, Trader: t.Trader, Input: t.Input, AmountIn: t.AmountIn}

		if err := h.Fund(trader, inputAsset, t.AmountIn); err != nil {
			return Report{}, err
		}
		res, err := h.Keeper.Swap(h.Ctx, trader, id, inputAsset, t.AmountIn, minOut)
		if err != nil {
			outcome.FairErr = err.Error()
		} else {
			outcome.FairOut = res.Withdraw
			outcome.Clamped = res.Clamped
			report.FairTotalOut += res.Withdraw
		}

		out, err := normal.Swap(t.Input == "x", t.AmountIn, minOut)
		if err != nil {
			outcome.NormalErr = err.Error()
		} else {
			outcome.NormalOut = out
			report.NormalTotalOut += out
		}

		report.Trades = append(report.Trades, outcome)
	}

	pool, err := h.Keeper.GetPool(h.Ctx, id)
	if err != nil {
		return Report{}, err
	}
	report.FairReserveX, report.FairReserveY = pool.ReserveX, pool.ReserveY
	report.NormalReserveX, report.NormalReserveY = normal.ReserveX, normal.ReserveY

	h.Ctx.Logger().Info("scenario replayed",
		"trades", len(s.Trades),
		"fair_out", report.FairTotalOut,
		"normal_out", report.NormalTotalOut,
	)
	return report, nil
}
