package cli

import (
	"errors"
	"fmt"

	"github.com/banachtech/mcoption/mc"
	"github.com/banachtech/mcoption/pricer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Estimate an option price and show the terminal price distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parameters(cmd)
			if err != nil {
				return err
			}
			p.SamplePaths = a.cfg.Preset.SamplePaths
			if cmd.Flags().Changed("sample-paths") {
				p.SamplePaths, _ = cmd.Flags().GetInt("sample-paths")
			}
			p.Steps = a.cfg.Preset.Steps
			if cmd.Flags().Changed("steps") {
				p.Steps, _ = cmd.Flags().GetInt("steps")
			}
			bins := a.cfg.Preset.Bins
			if cmd.Flags().Changed("bins") {
				bins, _ = cmd.Flags().GetInt("bins")
			}
			if p.SamplePaths > p.Paths {
				p.SamplePaths = p.Paths
			}

			res, err := pricer.Simulate(p)
			if err != nil {
				return err
			}
			a.logger.WithFields(logrus.Fields{
				"paths": p.Paths,
				"seed":  res.Seed,
				"price": res.Price,
			}).Debug("simulation finished")

			out := cmd.OutOrStdout()
			bs := mc.BlackScholes(p.Spot, p.Strike, p.Maturity, p.Rate, p.Volatility, p.Type)
			renderResult(out, p, res, bs)

			if !res.Finite() {
				a.logger.Warn("simulation produced non-finite values, skipping distribution plots")
				return nil
			}
			summary, err := pricer.Summarize(res.TerminalPrices, bins)
			if errors.Is(err, pricer.ErrNonFinite) {
				a.logger.Warn(err)
				return nil
			}
			if err != nil {
				return fmt.Errorf("summarize terminal prices: %w", err)
			}
			renderSummary(out, summary)
			renderHistogram(out, summary.Histogram, 40)
			if len(res.SamplePaths) > 0 {
				renderPaths(out, res)
			}
			return nil
		},
	}
	addParameterFlags(cmd)
	cmd.Flags().Int("sample-paths", 5, "Number of full sample paths to display.")
	cmd.Flags().Int("steps", pricer.DefaultSteps, "Time steps per sample path.")
	cmd.Flags().Int("bins", pricer.DefaultBins, "Histogram bins for terminal prices.")
	return cmd
}
