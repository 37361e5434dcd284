package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type filtersOutput struct {
	Groups  []filter.Group      `json:"groups"`
	Choices filter.Choices      `json:"choices"`
	Presets []filter.Preset     `json:"presets"`
	Sorts   []filter.SortOption `json:"sort_options"`
}

func newFiltersCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Show the available quick filters and advanced filter choices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := env()
			out := filtersOutput{
				Groups:  filter.BuildGroups(e.Catalog),
				Choices: filter.BuildChoices(e, now()),
				Presets: filter.AllPresets,
				Sorts:   filter.AllSortOptions,
			}
			if jsonOut {
				return printJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			header(w, "Quick filters  (--quick category:value)")
			for _, g := range out.Groups {
				var opts []string
				for _, o := range g.Options {
					opts = append(opts, fmt.Sprintf("%s %s", o.Value(), color.HiBlackString("("+o.Label()+")")))
				}
				printField(w, string(g.Category), strings.Join(opts, ", "))
			}

			fmt.Fprintln(w)
			header(w, "Advanced filter choices")
			ch := out.Choices
			printField(w, "producers", orNone(strings.Join(ch.Producers, ", ")))
			printField(w, "grapes", orNone(strings.Join(ch.Grapes, ", ")))
			printField(w, "countries", orNone(strings.Join(ch.Countries, ", ")))
			printField(w, "regions", orNone(strings.Join(ch.Regions, ", ")))
			printField(w, "appellations", orNone(strings.Join(ch.Appellations, ", ")))
			printField(w, "locations", orNone(strings.Join(ch.Locations, ", ")))
			printField(w, "bottle sizes", joinInts(ch.BottleSizes, " ml"))
			printField(w, "tags", strings.Join(ch.Tags, ", "))
			printField(w, "vintage", fmt.Sprintf("%d..%d", ch.Vintage.Min, ch.Vintage.Max))
			printField(w, "drink window", fmt.Sprintf("%d..%d", ch.DrinkWindow.Min, ch.DrinkWindow.Max))
			printField(w, "price", fmt.Sprintf("%g..%g", ch.Price.Min, ch.Price.Max))
			printField(w, "tasted", ch.Tasting.From.Format(catalog.DateLayout)+".."+ch.Tasting.To.Format(catalog.DateLayout))

			fmt.Fprintln(w)
			header(w, "Presets and sort orders")
			printField(w, "presets", joinEnum(out.Presets))
			printField(w, "sort", joinEnum(out.Sorts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func joinInts(values []int, suffix string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v) + suffix
	}
	return strings.Join(parts, ", ")
}
