package cli

import (
	"fmt"

	"github.com/banachtech/mcoption/mc"
	"github.com/banachtech/mcoption/pricer"
	"github.com/banachtech/mcoption/util"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func (a *app) convergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "converge",
		Short: "Show how the price estimate stabilises as the number of paths grows",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parameters(cmd)
			if err != nil {
				return err
			}
			counts, err := cmd.Flags().GetIntSlice("counts")
			if err != nil {
				return fmt.Errorf("error getting counts flag: %w", err)
			}
			counts, err = util.SortedCounts(counts)
			if err != nil {
				return err
			}

			bar := progressBar(len(counts), cmd)
			points, seed, err := pricer.Converge(p, counts, func(int) {
				bar.Add(1)
			})
			if err != nil {
				return err
			}
			bar.Finish()

			fmt.Fprintf(cmd.OutOrStdout(), "Seed %d\n", seed)
			bs := mc.BlackScholes(p.Spot, p.Strike, p.Maturity, p.Rate, p.Volatility, p.Type)
			renderConvergence(cmd.OutOrStdout(), points, bs)
			return nil
		},
	}
	addParameterFlags(cmd)
	cmd.Flags().IntSlice("counts", []int{1000, 5000, 10000, 50000, 100000}, "Path counts to price at, comma-separated.")
	return cmd
}

// progress bar initialization
func progressBar(length int, cmd *cobra.Command) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(
		length,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetDescription("pricing"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	return bar
}
