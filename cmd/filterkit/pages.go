package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/filterkit/pkg/logger"
	"github.com/dmitrymomot/filterkit/pkg/pagination"
)

func pagesCmd(a *app) *cobra.Command {
	var total, current, radius int

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Print the visible page window",
		Long: `Pages prints the pager markers for the current page. The current page
is wrapped in brackets and skipped pages collapse into an ellipsis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg pagination.Config
			if err := loadConfig(a, &cfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("total") {
				cfg.TotalPages = total
			}
			if cmd.Flags().Changed("current") {
				cfg.CurrentPage = current
			}

			w, err := pagination.NewFromConfig(cfg, pagination.WithRadius(radius))
			if err != nil {
				return err
			}

			markers := w.VisiblePages()
			a.log.Debug("page window",
				logger.Page(w.CurrentPage()),
				slog.Int("total", w.TotalPages()),
				slog.Int("markers", len(markers)),
			)
			parts := make([]string, 0, len(markers))
			for _, m := range markers {
				if m.Current {
					parts = append(parts, "["+m.String()+"]")
					continue
				}
				parts = append(parts, m.String())
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			return nil
		},
	}

	cmd.Flags().IntVarP(&total, "total", "t", 1, "total number of pages")
	cmd.Flags().IntVarP(&current, "current", "p", 1, "current page")
	cmd.Flags().IntVarP(&radius, "radius", "r", pagination.DefaultRadius, "pages shown on each side of the current one")

	return cmd
}
