package main

import (
	"github.com/Kabir14815/rr/internal/app"

	"github.com/spf13/cobra"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the consignment desk API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.log.Infow("application starting", "env", c.cfg.Env)

			if err := app.Run(cmd.Context(), c.cfg, c.log); err != nil {
				c.log.Errorw("application failed", "error", err)
				return err
			}

			c.log.Infow("application exited normally")
			return nil
		},
	}
}
