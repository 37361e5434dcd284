package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/fatih/color"
)

// ok prints a green success line.
func ok(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, color.CyanString(fmt.Sprintf(format, a...)))
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-14s %s\n", color.CyanString(label+":"), value)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printWineLine renders one wine as a single list row.
func printWineLine(w io.Writer, wine catalog.Wine) {
	qty := color.GreenString("×%d", wine.Quantity)
	if wine.Quantity == 0 {
		qty = color.RedString("×0")
	}
	fmt.Fprintf(w, "  %-6s %s %s  %s  %s  %s\n",
		color.WhiteString(wine.ID),
		wine.Producer,
		color.New(color.Bold).Sprint(wine.Name),
		color.HiBlackString(wine.SubtitleLine()),
		qty,
		priceLabel(wine.Price),
	)
}

func priceLabel(p *catalog.Price) string {
	if p == nil {
		return "no price"
	}
	return p.String()
}

func ratingLabel(avg float64, rated bool) string {
	if !rated {
		return "unrated"
	}
	return strconv.FormatFloat(avg, 'f', 2, 64) + " ★"
}

func readinessLabel(r filter.Readiness) string {
	switch r {
	case filter.ReadinessOptimal:
		return color.GreenString(r.Label())
	case filter.ReadinessClosing:
		return color.YellowString(r.Label())
	case filter.ReadinessPastPeak:
		return color.RedString(r.Label())
	}
	return color.BlueString(r.Label())
}

func freshnessLabel(f filter.Freshness) string {
	if f == filter.FreshnessWarningExceeded {
		return color.RedString(f.Label())
	}
	return color.GreenString(f.Label())
}

func labels[T interface{ Label() string }](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Label()
	}
	return strings.Join(parts, ", ")
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return color.HiBlackString("none")
	}
	return s
}
