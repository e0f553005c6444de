package cli

import (
	"context"
	"fmt"
	"io"
	"saapadu/internal/domains/dashboard/model/dto"
	dashboardService "saapadu/internal/domains/dashboard/service"
	"saapadu/internal/view"

	"github.com/spf13/cobra"
)

type reportOptions struct {
	format string
	query  dto.PanelQuery
}

func newReportCommand() *cobra.Command {
	opts := reportOptions{}

	cmd := &cobra.Command{
		Use:   "report [panel...]",
		Short: "Print dashboard panels, all of them when none is named",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := view.ParseFormat(opts.format)
			if err != nil {
				return err
			}

			app := loadApp(cmd.Context())
			defer app.Shutdown(cmd.Context())

			return Report(cmd.Context(), app.Services.Dashboard, cmd.OutOrStdout(), format, opts.query, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.format, "format", string(view.FormatText), "output format: text or html")
	flags.IntVar(&opts.query.HotelID, "hotel", 0, "hotel id filter")
	flags.StringVar(&opts.query.Category, "category", "", "menu category filter")
	flags.StringVar(&opts.query.Status, "status", "", "order status filter")
	flags.IntVar(&opts.query.Rating, "rating", 0, "review rating filter")

	return cmd
}

// Report renders each named panel, or every panel when panels is empty, separated by a blank line.
func Report(
	ctx context.Context,
	dashboard dashboardService.Dashboard,
	w io.Writer,
	format view.Format,
	query dto.PanelQuery,
	panels []string,
) error {
	if len(panels) == 0 {
		panels = view.Panels
	}

	for index, panel := range panels {
		query.Panel = panel

		table, err := dashboard.Panel(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to build panel %s: %w", panel, err)
		}

		if index > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
		}

		if err := table.Render(w, format); err != nil {
			return fmt.Errorf("failed to render panel %s: %w", panel, err)
		}
	}

	return nil
}
