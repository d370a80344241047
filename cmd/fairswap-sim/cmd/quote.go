package cmd

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

const (
	flagReserveIn  = "reserve-in"
	flagReserveOut = "reserve-out"
	flagLPSupply   = "lp-supply"
	flagFeeBps     = "fee-bps"
	flagAmountIn   = "amount-in"
	flagMinOut     = "min-out"
	flagPrecision  = "precision"
)

// QuoteResult is the output of the quote command.
type QuoteResult struct {
	Deposit   uint64 `json:"deposit" yaml:"deposit"`
	Withdraw  uint64 `json:"withdraw" yaml:"withdraw"`
	Price     string `json:"price" yaml:"price"`
	SpotPrice string `json:"spot_price" yaml:"spot_price"`
	Precision uint8  `json:"precision" yaml:"precision"`
}

// NewQuoteCmd returns the quote command.
func NewQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote a swap on the constant product curve",
		Long: `Quote prices a single swap on the curve before any window ceiling applies.
Every flag may also be set through the environment, for example FAIRSWAP_RESERVE_IN.`,
		Example: "fairswap-sim quote --reserve-in 1000 --reserve-out 2000 --lp-supply 1000 --fee-bps 30 --amount-in 100",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newViper(cmd)
			if err != nil {
				return err
			}
			format, err := outputFormat(v)
			if err != nil {
				return err
			}

			res, err := runQuote(v)
			if err != nil {
				return err
			}

			if format != outputText {
				return writeStructured(cmd.OutOrStdout(), format, res)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "deposit:    %d\n", res.Deposit)
			fmt.Fprintf(out, "withdraw:   %d\n", res.Withdraw)
			fmt.Fprintf(out, "price:      %s (1e%d scale)\n", res.Price, res.Precision)
			fmt.Fprintf(out, "spot price: %s\n", res.SpotPrice)
			return nil
		},
	}

	addQuoteFlags(cmd.Flags())
	return cmd
}

func addQuoteFlags(fs *pflag.FlagSet) {
	fs.Uint64(flagReserveIn, 0, "reserve of the asset paid in")
	fs.Uint64(flagReserveOut, 0, "reserve of the asset paid out")
	fs.Uint64(flagLPSupply, 0, "outstanding LP supply")
	fs.Uint16(flagFeeBps, 30, "pool fee in basis points")
	fs.Uint64(flagAmountIn, 0, "amount paid in")
	fs.Uint64(flagMinOut, 1, "minimum acceptable output")
	fs.Uint8(flagPrecision, types.DefaultPrecision, "fixed point decimal exponent for prices")
}

func runQuote(v *viper.Viper) (QuoteResult, error) {
	var (
		vals = make(map[string]uint64)
		err  error
	)
	for _, name := range []string{flagReserveIn, flagReserveOut, flagLPSupply, flagAmountIn, flagMinOut} {
		if vals[name], err = cast.ToUint64E(v.Get(name)); err != nil {
			return QuoteResult{}, fmt.Errorf("invalid --%s: %w", name, err)
		}
	}
	fee, err := cast.ToUint16E(v.Get(flagFeeBps))
	if err != nil {
		return QuoteResult{}, fmt.Errorf("invalid --%s: %w", flagFeeBps, err)
	}
	precision, err := cast.ToUint8E(v.Get(flagPrecision))
	if err != nil {
		return QuoteResult{}, fmt.Errorf("invalid --%s: %w", flagPrecision, err)
	}
	if err := types.ValidatePrecision(precision); err != nil {
		return QuoteResult{}, err
	}

	q, err := types.QuoteSwap(vals[flagReserveIn], vals[flagReserveOut], vals[flagLPSupply], fee, vals[flagAmountIn], vals[flagMinOut])
	if err != nil {
		return QuoteResult{}, err
	}
	res := QuoteResult{Deposit: q.Deposit, Withdraw: q.Withdraw, Precision: precision}

	if q.Withdraw > 0 {
		p, err := types.CalculatePrice(q.Deposit, q.Withdraw, precision)
		if err != nil {
			return QuoteResult{}, err
		}
		res.Price = p.String()
	}
	// Pre-trade price, in the same input-per-output units as Price.
	spot, err := types.CalculatePrice(vals[flagReserveIn], vals[flagReserveOut], precision)
	if err != nil {
		return QuoteResult{}, err
	}
	res.SpotPrice = spot.String()
	return res, nil
}
