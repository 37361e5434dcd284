package app

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/blackwell-systems/cellarctl/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type statusOutput struct {
	ConfigPath   string `json:"config_path"`
	ConfigExists bool   `json:"config_exists"`
	DataSource   string `json:"data_source"`
	Fingerprint  string `json:"fingerprint"`
	Wines        int    `json:"wines"`
	OpenBottles  int    `json:"open_bottles"`
	Ratings      int    `json:"ratings"`
	Locations    int    `json:"locations"`
	Year         int    `json:"year"`
	Sort         string `json:"sort"`
}

func newStatusCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the data source, configuration and inventory counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := collectStatus()
			if jsonOut {
				return printJSON(cmd.OutOrStdout(), result)
			}
			printStatusText(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func collectStatus() statusOutput {
	path := flagConfig
	if path == "" {
		path = config.Path()
	}
	_, err := os.Stat(path)

	source := cfg.Data.Path
	if flagData != "" {
		source = flagData
	}
	if source == "" {
		source = "bundled sample"
	}

	return statusOutput{
		ConfigPath:   path,
		ConfigExists: err == nil,
		DataSource:   source,
		Fingerprint:  cellar.Fingerprint(),
		Wines:        cellar.Len(),
		OpenBottles:  len(cellar.OpenBottles()),
		Ratings:      len(cellar.Ratings()),
		Locations:    len(cellar.Locations()),
		Year:         env().Year,
		Sort:         string(cfg.SortOption()),
	}
}

func printStatusText(w io.Writer, s statusOutput) {
	header(w, "cellarctl status")
	cfgLabel := s.ConfigPath
	if !s.ConfigExists {
		cfgLabel += color.HiBlackString("  (not found, using defaults)")
	}
	printField(w, "config", cfgLabel)
	printField(w, "data", s.DataSource)
	printField(w, "fingerprint", orNone(shortHash(s.Fingerprint)))
	printField(w, "wines", strconv.Itoa(s.Wines))
	printField(w, "open bottles", strconv.Itoa(s.OpenBottles))
	printField(w, "ratings", strconv.Itoa(s.Ratings))
	printField(w, "locations", strconv.Itoa(s.Locations))
	printField(w, "year", strconv.Itoa(s.Year))
	printField(w, "sort", s.Sort)

	if s.Wines == 0 {
		fmt.Fprintf(w, "\n%s the inventory is empty, check data.path or set CELLARCTL_LOGGING_LEVEL=debug\n", color.CyanString("hint:"))
	}
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
