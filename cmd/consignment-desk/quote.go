package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/internal/service"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type quoteFlags struct {
	origin       string
	destination  string
	weight       string
	shipmentType string
	serviceType  string
}

func newQuoteCmd(c *cli) *cobra.Command {
	var f quoteFlags

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Estimate the price of a shipment",
		Example: `  consignment-desk quote --origin 110001 --destination 400001 --weight 2.5
  consignment-desk quote --origin 110001 --destination 560001 --weight 12 --type freight --service express`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			weight, err := decimal.NewFromString(f.weight)
			if err != nil {
				return fmt.Errorf("%s: %w", service.MsgInvalidWeight, err)
			}

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

			quote, err := storefront.Quote(ctx, entity.QuoteRequest{
				OriginPincode:      f.origin,
				DestinationPincode: f.destination,
				WeightKg:           weight,
				ShipmentType:       f.shipmentType,
				ServiceType:        f.serviceType,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", entity.UserMessage(err, service.MsgQuoteFailed), err)
			}
			return printQuote(cmd.OutOrStdout(), quote)
		},
	}

	cmd.Flags().StringVar(&f.origin, "origin", "", "origin pincode")
	cmd.Flags().StringVar(&f.destination, "destination", "", "destination pincode")
	cmd.Flags().StringVar(&f.weight, "weight", "", "weight in kg")
	cmd.Flags().StringVar(&f.shipmentType, "type", "", "document, parcel or freight (default parcel)")
	cmd.Flags().StringVar(&f.serviceType, "service", "", "standard or express (default standard)")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}

func printQuote(w io.Writer, q *service.QuoteView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Zone:\t%s\n", q.Zone)
	fmt.Fprintf(tw, "Base amount:\t%s\n", q.BaseAmount.StringFixed(2))
	fmt.Fprintf(tw, "Weight charges:\t%s\n", q.WeightCharges.StringFixed(2))
	fmt.Fprintf(tw, "Fuel surcharge:\t%s\n", q.FuelSurcharge.StringFixed(2))
	fmt.Fprintf(tw, "%s:\t%s\n", q.GSTLabel, q.GSTAmount.StringFixed(2))
	fmt.Fprintf(tw, "Total:\t%s\n", q.TotalAmount.StringFixed(2))
	fmt.Fprintf(tw, "Estimated delivery:\t%d days\n", q.EstimatedDays)

	return tw.Flush()
}
