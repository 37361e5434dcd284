package app

import (
	"fmt"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		q      queryFlags
		format string
		search string
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the filtered, sorted wine list to a JSON or YAML file",
		Example: `  cellarctl export ready.yaml --preset drinkReadyToday
  cellarctl export reds.json --quick style:red --sort priceAscending`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := catalog.ParseFormat(format)
			if err != nil {
				return err
			}

			var words []string
			if search != "" {
				words = []string{search}
			}
			result := filter.Apply(env(), q.build(words))
			if err := catalog.WriteFile(path, result.Wines, f); err != nil {
				return fmt.Errorf("exporting wines: %w", err)
			}
			ok(cmd.OutOrStdout(), "Exported %d wines to %s", len(result.Wines), path)
			return nil
		},
	}

	q.register(cmd.Flags())
	cmd.Flags().StringVar(&search, "search", "", "Search text")
	cmd.Flags().StringVar(&format, "format", "auto", "Output format: auto, json or yaml")
	return cmd
}
