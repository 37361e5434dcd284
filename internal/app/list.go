package app

import (
	"fmt"
	"io"

	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		q       queryFlags
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:     "list [search words]",
		Aliases: []string{"ls", "search"},
		Short:   "List wines matching a search, quick filters and advanced filters",
		Long: `List the wines that match every given criterion, sorted.

Search words match producer, name, vintage, region, appellation, country,
grapes and storage locations, case-insensitively.

Quick filters use category:value. Options in the same category are
alternatives, different categories must all match.`,
		Example: `  cellarctl list riesling
  cellarctl list --quick style:red --quick style:rose --quick readiness:optimal
  cellarctl list --grape "Pinot Noir" --price 20..50 --sort priceAscending
  cellarctl list --preset openBottleWarning --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := q.build(args)
			result := filter.Apply(env(), query)
			logger.Debug("list", "search", query.Search, "active_filters", result.ActiveCount,
				"sort", query.Sort, "matches", len(result.Wines))

			if jsonOut {
				return printJSON(cmd.OutOrStdout(), result)
			}
			printResult(cmd.OutOrStdout(), result, query.Sort)
			return nil
		},
	}

	q.register(cmd.Flags())
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func printResult(w io.Writer, result filter.Result, sortOption filter.SortOption) {
	summary := fmt.Sprintf("%d wines", len(result.Wines))
	if result.ActiveCount > 0 {
		summary += fmt.Sprintf(", %d filters active", result.ActiveCount)
	}
	header(w, "%s  (sorted by %s)", summary, sortOption.Label())

	if len(result.Wines) == 0 {
		fmt.Fprintln(w, color.HiBlackString("  No wines match."))
		return
	}
	for _, wine := range result.Wines {
		printWineLine(w, wine)
	}
}
