package cli

import (
	"fmt"

	"github.com/banachtech/mcoption/config"
	"github.com/banachtech/mcoption/pricer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type app struct {
	cfg    config.Config
	logger *logrus.Logger
}

// NewRootCmd builds the mcoption command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: logrus.New()}

	rootCmd := &cobra.Command{
		Use:   "mcoption",
		Short: "Prices European options by Monte Carlo simulation of geometric Brownian motion",
		Long: `mcoption draws standard normal variates, maps them to terminal prices under geometric
Brownian motion and averages the discounted payoffs into a price estimate. It can also show the
distribution of terminal prices, a few full sample paths, and how the estimate converges with more paths.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			presetFile, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("error getting config flag: %w", err)
			}
			a.cfg, err = config.Load(presetFile)
			if err != nil {
				return err
			}

			level := a.cfg.LogLevel
			if cmd.Flags().Changed("log-level") {
				level, _ = cmd.Flags().GetString("log-level")
			}
			lvl, err := logrus.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("error parsing log level: %w", err)
			}
			a.logger.SetLevel(lvl)
			a.logger.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "YAML preset file with default pricing parameters.")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error.")

	rootCmd.AddCommand(
		a.simulateCmd(),
		a.convergeCmd(),
		a.ivolCmd(),
		a.serveCmd(),
	)
	return rootCmd
}

// addParameterFlags registers the pricing controls. Defaults shown are the reset values;
// a preset file replaces any flag that is not set explicitly.
func addParameterFlags(cmd *cobra.Command) {
	d := config.DefaultPreset()
	cmd.Flags().Float64P("spot", "s", d.Spot, "Current price of the underlying.")
	cmd.Flags().Float64P("strike", "k", d.Strike, "Strike price.")
	cmd.Flags().Float64P("maturity", "t", d.Maturity, "Time to maturity in years.")
	cmd.Flags().Float64P("rate", "r", d.Rate, "Continuously compounded risk-free rate.")
	cmd.Flags().Float64P("volatility", "v", d.Volatility, "Annualised volatility.")
	cmd.Flags().String("type", d.OptionType, "Option type: call or put.")
	cmd.Flags().IntP("paths", "n", d.Paths, "Number of simulated paths.")
	cmd.Flags().Uint64("seed", 0, "Seed for a reproducible run. Omit for a fresh random run.")
}

// parameters merges the preset with any explicitly set flags.
func (a *app) parameters(cmd *cobra.Command) (pricer.Parameters, error) {
	preset := a.cfg.Preset
	f := cmd.Flags()

	floats := map[string]*float64{
		"spot":       &preset.Spot,
		"strike":     &preset.Strike,
		"maturity":   &preset.Maturity,
		"rate":       &preset.Rate,
		"volatility": &preset.Volatility,
	}
	for name, dst := range floats {
		if f.Changed(name) {
			v, err := f.GetFloat64(name)
			if err != nil {
				return pricer.Parameters{}, fmt.Errorf("error getting %s flag: %w", name, err)
			}
			*dst = v
		}
	}
	if f.Changed("type") {
		preset.OptionType, _ = f.GetString("type")
	}
	if f.Changed("paths") {
		preset.Paths, _ = f.GetInt("paths")
	}

	p, err := preset.Parameters()
	if err != nil {
		return pricer.Parameters{}, err
	}
	if f.Changed("seed") {
		seed, err := f.GetUint64("seed")
		if err != nil {
			return pricer.Parameters{}, fmt.Errorf("error getting seed flag: %w", err)
		}
		p.Seed = &seed
	}
	return p, nil
}
