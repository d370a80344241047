package cmd

import (
	"fmt"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "FAIRSWAP"

	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagQuiet     = "quiet"
	flagOutput    = "output"

	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// NewRootCmd creates the fairswap-sim root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fairswap-sim",
		Short: "Quote and replay trades against a fairswap pool",
		Long: `fairswap-sim runs the fairswap pricing core offline. It quotes single swaps on
the constant product curve and replays trade scenarios on a fairswap pool next to
a plain constant product pool so the effect of the window price ratchet can be
compared trade by trade.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String(flagLogLevel, zerolog.InfoLevel.String(), "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String(flagLogFormat, "plain", "log format (plain, json)")
	rootCmd.PersistentFlags().Bool(flagQuiet, false, "disable logging")
	rootCmd.PersistentFlags().StringP(flagOutput, "o", outputText, "output format (text, json, yaml)")

	rootCmd.AddCommand(
		NewQuoteCmd(),
		NewReplayCmd(),
	)
	return rootCmd
}

// newViper returns a viper instance bound to the command's flags and to
// FAIRSWAP_* environment variables.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return v, nil
}

func newLogger(cmd *cobra.Command, v *viper.Viper) (log.Logger, error) {
	if v.GetBool(flagQuiet) {
		return log.NewNopLogger(), nil
	}

	level, err := zerolog.ParseLevel(v.GetString(flagLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", flagLogLevel, err)
	}

	opts := []log.Option{log.LevelOption(level), log.ColorOption(false)}
	switch format := v.GetString(flagLogFormat); format {
	case "plain":
	case "json":
		opts = append(opts, log.OutputJSONOption())
	default:
		return nil, fmt.Errorf("invalid %s %q", flagLogFormat, format)
	}
	return log.NewLogger(cmd.ErrOrStderr(), opts...), nil
}

func outputFormat(v *viper.Viper) (string, error) {
	switch f := v.GetString(flagOutput); f {
	case outputText, outputJSON, outputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid %s %q", flagOutput, f)
	}
}
