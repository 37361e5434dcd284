package app

import (
	"fmt"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type openBottleRow struct {
	catalog.OpenBottle
	Producer  string           `json:"producer"`
	Name      string           `json:"name"`
	Freshness filter.Freshness `json:"freshness"`
}

func newBottlesCmd() *cobra.Command {
	var (
		jsonOut bool
		overdue bool
	)

	cmd := &cobra.Command{
		Use:   "bottles",
		Short: "List open bottles and how long they have been open",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := []openBottleRow{}
			for _, b := range cellar.OpenBottles() {
				row := openBottleRow{OpenBottle: b, Freshness: filter.FreshnessOf(b)}
				if overdue && row.Freshness != filter.FreshnessWarningExceeded {
					continue
				}
				if wine, found := cellar.Wine(b.WineID); found {
					row.Producer, row.Name = wine.Producer, wine.Name
				} else {
					logger.Warn("open bottle references unknown wine", "wine_id", b.WineID)
				}
				rows = append(rows, row)
			}

			if jsonOut {
				return printJSON(cmd.OutOrStdout(), rows)
			}

			w := cmd.OutOrStdout()
			header(w, "%d open bottles  (recommendation: %d days)", len(rows), filter.FreshnessLimitDays)
			for _, r := range rows {
				fmt.Fprintf(w, "  %-6s %s %s  %s  %s\n",
					color.WhiteString(r.WineID),
					r.Producer,
					r.Name,
					color.HiBlackString("%d days, %s", r.DaysOpen, r.Preservation.Label()),
					freshnessLabel(r.Freshness),
				)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&overdue, "overdue", false, "Only bottles past the recommendation")
	return cmd
}
