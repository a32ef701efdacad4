package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/internal/service"

	"github.com/spf13/cobra"
)

type exportFlags struct {
	mode string
	ids  []string
	from string
	to   string
	zone string
	dir  string
}

func newExportCmd(c *cli) *cobra.Command {
	var f exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download consignments as a spreadsheet",
		Example: `  consignment-desk export --mode all
  consignment-desk export --mode selected --ids 65f1c0,65f1c1
  consignment-desk export --mode dateRange --from 2024-03-01 --to 2024-03-31
  consignment-desk export --mode zone --zone METRO --dir /tmp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := f.request()
			if err != nil {
				return err
			}
			if err = req.Validate(); err != nil {
				return fmt.Errorf("%s: %w", entity.UserMessage(err, service.MsgExportFailed), err)
			}

			client, err := c.backendClient()
			if err != nil {
				return err
			}

			ctx, cancel := c.commandContext(cmd)
			defer cancel()

			export, err := client.ExportConsignments(ctx, req)
			if err != nil {
				return fmt.Errorf("%s: %w", entity.UserMessage(err, service.MsgExportFailed), err)
			}

			path := filepath.Join(f.dir, export.FileName)
			if err = os.WriteFile(path, export.Content, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bytes to %s\n", len(export.Content), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&f.mode, "mode", string(entity.ExportAll), "all, selected, dateRange or zone")
	cmd.Flags().StringSliceVar(&f.ids, "ids", nil, "consignment ids for selected mode")
	cmd.Flags().StringVar(&f.from, "from", "", "first day for dateRange mode (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "last day for dateRange mode (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.zone, "zone", "", "zone for zone mode")
	cmd.Flags().StringVar(&f.dir, "dir", ".", "directory the spreadsheet is written to")

	return cmd
}

func (f exportFlags) request() (entity.ExportRequest, error) {
	req := entity.ExportRequest{
		Mode: entity.ExportMode(f.mode),
		IDs:  f.ids,
		Zone: f.zone,
	}

	var err error
	if f.from != "" {
		if req.StartDate, err = entity.ParseDay(f.from); err != nil {
			return req, fmt.Errorf("invalid --from: %w", err)
		}
	}
	if f.to != "" {
		if req.EndDate, err = entity.ParseDay(f.to); err != nil {
			return req, fmt.Errorf("invalid --to: %w", err)
		}
	}
	return req, nil
}
