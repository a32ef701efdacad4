package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Kabir14815/rr/internal/app"
	"github.com/Kabir14815/rr/internal/backend"
	"github.com/Kabir14815/rr/internal/config"
	"github.com/Kabir14815/rr/pkg/logger"
	"github.com/Kabir14815/rr/pkg/metric"

	"github.com/spf13/cobra"
)

// cli carries what every command shares once the root has run.
type cli struct {
	configPath string
	verbose    bool
	timeout    time.Duration

	cfg *config.Config
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "consignment-desk",
		Short: "Consignment desk service and operator tools",
		Long: `consignment-desk runs the operator's consignment API and offers one-shot
commands for shipment tracking, price quotes and spreadsheet exports.

Configuration is read from --config, CONFIG_PATH or the environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a, ok := c.log.(*logger.Adapter); ok {
				_ = a.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log to stderr in one-shot commands")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "deadline for one-shot commands")

	root.AddCommand(
		newServeCmd(c),
		newTrackCmd(c),
		newQuoteCmd(c),
		newExportCmd(c),
	)

	return root
}

func (c *cli) load(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	c.cfg = cfg

	// one-shot commands print results; logs would interleave with them
	if cmd.Name() != "serve" && !c.verbose {
		c.log = logger.NewNop()
		return nil
	}

	var opts []logger.Option
	if cmd.Name() != "serve" {
		opts = append(opts, logger.Console(), logger.Output(cmd.ErrOrStderr()))
	}
	log, err := logger.NewAdapter(cfg, opts...)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	c.log = log
	return nil
}

func (c *cli) backendClient() (*backend.Client, error) {
	return app.NewBackendClient(c.cfg, c.log, metric.NewFactory().Upstream())
}

func (c *cli) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), c.timeout)
}
