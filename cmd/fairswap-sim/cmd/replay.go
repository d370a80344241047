package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fairswap-labs/fairswap/x/fairswap/simulation"
)

const flagConfig = "config"

// NewReplayCmd returns the replay command.
func NewReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a trade scenario on a fairswap pool and a plain pool",
		Long: `Replay reads a scenario file (YAML, TOML or JSON) describing the initial pool and
a list of trades, runs it on a fairswap pool and a plain constant product pool, and
prints what each trader received from each.

Example scenario:

  fee_bps: 30
  reserve_x: 1000
  reserve_y: 2000
  trades:
    - {window: 0, trader: victim, input: x, amount_in: 100}
    - {window: 0, trader: attacker, input: y, amount_in: 400}
    - {window: 0, trader: attacker, input: x, amount_in: 100}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newViper(cmd)
			if err != nil {
				return err
			}
			format, err := outputFormat(v)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd, v)
			if err != nil {
				return err
			}

			scenario, err := LoadScenario(v.GetString(flagConfig))
			if err != nil {
				return err
			}
			logger.Debug("scenario loaded", "trades", len(scenario.Trades), "fee_bps", scenario.FeeBps)

			report, err := simulation.Compare(scenario, logger)
			if err != nil {
				return err
			}

			if format != outputText {
				return writeStructured(cmd.OutOrStdout(), format, report)
			}
			return writeReportTable(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringP(flagConfig, "c", "", "scenario file")
	return cmd
}

// LoadScenario reads a scenario file. Keys can be overridden through
// FAIRSWAP_* environment variables, e.g. FAIRSWAP_FEE_BPS.
func LoadScenario(path string) (simulation.Scenario, error) {
	if path == "" {
		return simulation.Scenario{}, errors.New("a scenario file is required (--config or FAIRSWAP_CONFIG)")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for _, key := range []string{"asset_x", "asset_y", "fee_bps", "reserve_x", "reserve_y", "lp_amount"} {
		if err := v.BindEnv(key); err != nil {
			return simulation.Scenario{}, err
		}
	}
	if err := v.ReadInConfig(); err != nil {
		return simulation.Scenario{}, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var s simulation.Scenario
	if err := v.Unmarshal(&s); err != nil {
		return simulation.Scenario{}, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	return s, nil
}

func writeReportTable(out io.Writer, r simulation.Report) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tWINDOW\tTRADER\tIN\tAMOUNT\tFAIR OUT\tNORMAL OUT\tCLAMPED\tNOTE")
	fmt.Fprintln(w, "-\t------\t------\t--\t------\t--------\t----------\t-------\t----")
	for _, t := range r.Trades {
		note := ""
		switch {
		case t.FairErr != "":
			note = "fair: " + t.FairErr
		case t.NormalErr != "":
			note = "normal: " + t.NormalErr
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%d\t%d\t%d\t%t\t%s\n",
			t.Index, t.Window, t.Trader, t.Input, t.AmountIn, t.FairOut, t.NormalOut, t.Clamped, note)
	}
	fmt.Fprintf(w, "\t\t\t\t\t%d\t%d\t\ttotal out\n", r.FairTotalOut, r.NormalTotalOut)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nfair reserves:   (%d, %d)\nnormal reserves: (%d, %d)\n",
		r.FairReserveX, r.FairReserveY, r.NormalReserveX, r.NormalReserveY)
	return nil
}
