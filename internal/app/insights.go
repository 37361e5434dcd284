package app

import (
	"strconv"

	"github.com/blackwell-systems/cellarctl/internal/insights"
	"github.com/spf13/cobra"
)

func newInsightsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show cellar counters: ready to drink, closing, top ratings, open bottles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := insights.Summarize(env())
			if jsonOut {
				return printJSON(cmd.OutOrStdout(), s)
			}

			w := cmd.OutOrStdout()
			header(w, "Cellar insights")
			printField(w, "wines", strconv.Itoa(s.Wines))
			printField(w, "bottles", strconv.Itoa(s.Bottles))
			printField(w, "drink ready", strconv.Itoa(s.DrinkReady))
			printField(w, "closing", strconv.Itoa(s.SoonDue))
			printField(w, "top ratings", strconv.Itoa(s.TopRatings))
			printField(w, "open bottles", strconv.Itoa(s.OpenBottles))
			if s.OpenPastFreshness > 0 {
				warn(cmd.ErrOrStderr(), "%d open bottles are past the recommendation", s.OpenPastFreshness)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
