package app

import (
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/blackwell-systems/cellarctl/internal/tui"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	var (
		q       queryFlags
		pick    bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "browse [search words]",
		Short: "Browse the cellar (interactive TUI or text output)",
		Long: `Browse the cellar in an interactive list.

Keys: enter shows a wine, s cycles the sort order, f opens the quick-filter
picker, r resets all filters, / narrows the list, q quits.

When stdout is not a terminal the result is printed like 'cellarctl list'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := q.build(args)
			e := env()

			if !tui.ShouldUseTUI(cmd) {
				result := filter.Apply(e, query)
				if jsonOut {
					return printJSON(cmd.OutOrStdout(), result)
				}
				printResult(cmd.OutOrStdout(), result, query.Sort)
				return nil
			}

			if pick {
				selected, ok, err := tui.RunQuickPicker(filter.BuildGroups(e.Catalog), query.State.Quick)
				if err != nil {
					return err
				}
				if ok {
					query.State.Quick = selected
				}
			}

			for {
				result, err := tui.RunBrowser(e, query)
				if err != nil {
					return err
				}
				query = result.Query

				switch result.Action {
				case tui.ActionEditFilters:
					selected, ok, err := tui.RunQuickPicker(filter.BuildGroups(e.Catalog), query.State.Quick)
					if err != nil {
						return err
					}
					if ok {
						query.State.Quick = selected
					}
					continue
				case tui.ActionShowDetails:
					if result.Wine == nil {
						return nil
					}
					d, err := describeWine(e, result.Wine.ID)
					if err != nil {
						return err
					}
					printWineDetail(cmd.OutOrStdout(), d)
				}
				return nil
			}
		},
	}

	q.register(cmd.Flags())
	cmd.Flags().BoolVar(&pick, "pick", false, "Choose quick filters before browsing")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result as JSON instead of browsing")
	return cmd
}
