package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// wineDetail is the JSON shape of the show command.
type wineDetail struct {
	Wine         catalog.Wine              `json:"wine"`
	Readiness    filter.Readiness          `json:"readiness"`
	Statuses     []filter.Status           `json:"statuses"`
	Closure      filter.Closure            `json:"closure"`
	BottleSizeML int                       `json:"bottle_size_ml"`
	ServingHints []filter.ServingHint      `json:"serving_hints"`
	Missing      []filter.CompletenessFlag `json:"missing"`
	AvgRating    *float64                  `json:"average_rating,omitempty"`
	LastTasted   string                    `json:"last_tasted,omitempty"`
	Ratings      []catalog.Rating          `json:"ratings"`
	OpenBottle   *catalog.OpenBottle       `json:"open_bottle,omitempty"`
	Freshness    filter.Freshness          `json:"freshness,omitempty"`
}

func newShowCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:     "show <id>",
		Aliases: []string{"info"},
		Short:   "Show a wine with its ratings, open bottle and derived values",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := describeWine(env(), args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd.OutOrStdout(), d)
			}
			printWineDetail(cmd.OutOrStdout(), d)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func describeWine(e filter.Env, id string) (wineDetail, error) {
	c := e.Catalog
	w, found := c.Wine(id)
	if !found {
		return wineDetail{}, fmt.Errorf("wine %q not found", id)
	}

	d := wineDetail{
		Wine:         w,
		Readiness:    filter.ReadinessFor(e.Year, w.DrinkWindow),
		Statuses:     filter.StatusesFor(w, c),
		Closure:      filter.ClosureFor(w.Style),
		BottleSizeML: filter.BottleSizeML(w),
		ServingHints: filter.ServingHintsFor(w.Style),
		Missing:      filter.CompletenessFlagsFor(w),
		Ratings:      c.RatingsFor(id),
	}
	if avg, rated := c.AverageRating(id); rated {
		d.AvgRating = &avg
	}
	if last, tasted := c.LastTasted(id); tasted {
		d.LastTasted = last.Format(catalog.DateLayout)
	}
	if b, open := c.OpenBottleFor(id); open {
		d.OpenBottle = &b
		d.Freshness = filter.FreshnessOf(b)
	}
	return d, nil
}

func printWineDetail(w io.Writer, d wineDetail) {
	wine := d.Wine
	header(w, "Wine %s: %s %s", wine.ID, wine.Producer, wine.Name)
	printField(w, "vintage", wine.VintageLabel())
	printField(w, "style", wine.Style.Label())
	printField(w, "origin", orNone(strings.Join(nonBlank(wine.Region, wine.Appellation, wine.Country), ", ")))
	printField(w, "grapes", orNone(strings.Join(wine.Grapes, ", ")))
	if wine.ABV != nil {
		printField(w, "abv", strconv.FormatFloat(*wine.ABV, 'f', 1, 64)+" %")
	}
	printField(w, "drink window", wine.DrinkWindow.Label())
	printField(w, "readiness", readinessLabel(d.Readiness))
	printField(w, "status", labels(d.Statuses))
	printField(w, "quantity", strconv.Itoa(wine.Quantity))
	printField(w, "locations", wine.LocationSummary())
	printField(w, "price", priceLabel(wine.Price))
	printField(w, "closure", d.Closure.Label())
	printField(w, "bottle", fmt.Sprintf("%d ml", d.BottleSizeML))
	if len(d.ServingHints) > 0 {
		printField(w, "serving", labels(d.ServingHints))
	}
	if len(d.Missing) > 0 {
		printField(w, "missing", color.YellowString(labels(d.Missing)))
	}

	avg, rated := 0.0, d.AvgRating != nil
	if rated {
		avg = *d.AvgRating
	}
	printField(w, "rating", ratingLabel(avg, rated))
	if d.LastTasted != "" {
		printField(w, "last tasted", d.LastTasted)
	}

	if d.OpenBottle != nil {
		b := d.OpenBottle
		printField(w, "open bottle", fmt.Sprintf("since %s, %d days, %s, %s",
			b.OpenedAt, b.DaysOpen, b.Preservation.Label(), freshnessLabel(d.Freshness)))
	}

	if len(d.Ratings) > 0 {
		fmt.Fprintln(w)
		header(w, "Tasting notes")
		for _, r := range d.Ratings {
			notes := strings.TrimSpace(r.Notes)
			if notes == "" {
				notes = color.HiBlackString("(no notes)")
			}
			fmt.Fprintf(w, "  %s  %.1f ★  %s\n", r.Date, r.Stars, notes)
		}
	}
}

func nonBlank(values ...string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
