package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/config"
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/blackwell-systems/cellarctl/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		dataPath string
		sortName string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write a cellarctl config file.

Without --data the bundled sample cellar is used, which is handy for
trying the filters out. Point --data at your own JSON or YAML inventory
document to browse your cellar.`,
		Example: `  cellarctl init
  cellarctl init --data ~/cellar/inventory.yaml --sort ratingHighToLow`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flagConfig
			if path == "" {
				path = config.Path()
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("checking config: %w", err)
			}

			newCfg := config.Default()
			if dataPath != "" {
				expanded := util.ExpandHome(dataPath)
				if _, err := catalog.Load(expanded, catalog.FormatAuto); err != nil {
					warn(cmd.ErrOrStderr(), "Inventory %s does not load yet: %v", expanded, err)
				}
				newCfg.Data.Path = expanded
			}
			if sortName != "" {
				s, err := filter.ParseSortOption(sortName)
				if err != nil {
					return err
				}
				newCfg.Defaults.Sort = string(s)
			}

			if err := config.SaveFile(path, newCfg); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			w := cmd.OutOrStdout()
			ok(w, "Wrote %s", path)
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Next steps:")
			fmt.Fprintf(w, "  %s\n", color.CyanString("cellarctl list --quick readiness:optimal"))
			fmt.Fprintf(w, "  %s\n", color.CyanString("cellarctl browse"))
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data-path", "", "Inventory document to use instead of the bundled sample")
	cmd.Flags().StringVar(&sortName, "sort", "", "Default sort order")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config")
	return cmd
}
