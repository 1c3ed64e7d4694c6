package cli

import (
	"github.com/banachtech/mcoption/api"
	"github.com/banachtech/mcoption/pricer"
	"github.com/spf13/cobra"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pricer over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			address := a.cfg.Address
			if cmd.Flags().Changed("addr") {
				address, _ = cmd.Flags().GetString("addr")
			}
			if a.cfg.APIKeyHash == "" {
				a.logger.Warn("MCOPTION_API_KEY_HASH is not set, the api is unauthenticated")
			}
			server := api.NewServer(a.cfg, pricer.Engine{}, a.logger)
			return server.Start(address)
		},
	}
	cmd.Flags().String("addr", "", "Listen address, overrides MCOPTION_ADDR.")
	return cmd
}
