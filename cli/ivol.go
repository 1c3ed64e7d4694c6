package cli

import (
	"fmt"

	"github.com/banachtech/mcoption/mc"
	"github.com/spf13/cobra"
)

func (a *app) ivolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ivol",
		Short: "Back out the volatility implied by a quoted option price",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parameters(cmd)
			if err != nil {
				return err
			}
			price, err := cmd.Flags().GetFloat64("price")
			if err != nil {
				return fmt.Errorf("error getting price flag: %w", err)
			}

			vol, err := mc.ImpliedVol(price, p.Spot, p.Strike, p.Maturity, p.Rate, p.Type)
			if err != nil {
				return err
			}
			a.logger.WithField("price", price).Debug("calibrated implied volatility")
			fmt.Fprintf(cmd.OutOrStdout(), "Implied volatility: %.6f\n", vol)
			return nil
		},
	}
	addParameterFlags(cmd)
	cmd.Flags().Float64("price", 0, "Quoted option price. This flag is required.")
	cmd.MarkFlagRequired("price")
	return cmd
}
