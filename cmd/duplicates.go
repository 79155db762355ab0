package cmd

import (
	"fmt"
	"sort"

	"trimble-export/core/config"
	"trimble-export/core/export"
	"trimble-export/core/source"
	"trimble-export/feature/continuous"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// duplicatesCmd reports duplicate (site, date) keys in a field export.
var duplicatesCmd = &cobra.Command{
	Use:   "duplicates [input-file]",
	Short: "Report duplicate site/date keys in a field data export",
	Long: `Report records in a field data export that share a (site, date) key.

Duplicates are not necessarily errors (a site can be visited twice in a
day) but each one produces its own statement, so the reviewer should know
about them before applying the generated SQL.

When no input file is given, source.path from the configuration is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDuplicatesCheck,
}

func init() {
	RootCmd.AddCommand(duplicatesCmd)
}

func runDuplicatesCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	input, err := resolveInput(args, cfg.Source)
	if err != nil {
		return err
	}

	records, err := source.ReadFile(input, cfg.Source)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return export.ErrEmptySource
	}

	layouts := export.Layouts{Date: cfg.Export.DateLayout, Time: cfg.Export.TimeLayout}
	dups := continuous.DuplicateKeys(records, layouts)

	if len(dups) == 0 {
		color.Green("✓ no duplicate keys in %d records", len(records))
		return nil
	}

	keys := make([]string, 0, len(dups))
	for k := range dups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	color.Yellow("%d duplicate keys:", len(dups))
	for _, k := range keys {
		color.Yellow("  %s: %d records", k, dups[k])
	}

	return nil
}
