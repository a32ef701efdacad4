package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/internal/service"

	"github.com/spf13/cobra"
)

func newTrackCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "track <tracking-number>",
		Short: "Show the status and history of a shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.backendClient()
			if err != nil {
				return err
			}
			storefront, err := service.NewStorefront(client, client, c.log)
			if err != nil {
				return err
			}

			ctx, cancel := c.commandContext(cmd)
			defer cancel()

			tracking, err := storefront.Track(ctx, args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", entity.UserMessage(err, service.MsgShipmentNotFound), err)
			}
			return printTracking(cmd.OutOrStdout(), tracking)
		},
	}
}

func printTracking(w io.Writer, t *service.Tracking) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Tracking number:\t%s\n", t.TrackingNumber)
	fmt.Fprintf(tw, "Status:\t%s\n", t.StatusLabel)
	fmt.Fprintf(tw, "Route:\t%s -> %s\n", t.Origin, t.Destination)

	if len(t.Timeline) > 0 {
		fmt.Fprintln(tw)
		for _, e := range t.Timeline {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				e.Timestamp.Format("02 Jan 2006 15:04"), e.Label, e.Location, e.Description)
		}
	}
	return tw.Flush()
}
