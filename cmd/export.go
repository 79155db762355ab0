package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"trimble-export/core/config"
	"trimble-export/core/export"
	"trimble-export/core/logger"
	"trimble-export/core/source"
	"trimble-export/feature/continuous"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for export continuous command
	exportOperation    string
	exportMode         string
	exportOut          string
	exportWindowStart  string
	exportWindowEnd    string
	exportKeepComments bool
)

// exportCmd is the parent command for all export operations.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate SQL statements from a field data export",
	Long: `Generate SQL statements from a field data export.
The statements are written to a script file for manual review before a
human operator applies them to the master database.`,
}

// continuousExportCmd generates statements for continuous data loggers.
var continuousExportCmd = &cobra.Command{
	Use:   "continuous [input-file]",
	Short: "Export continuous logger retrievals or deployments to SQL",
	Long: `Export continuous data logger field records to SQL statements.

Retrieval records become UPDATE statements against the row created at
deployment time; deployment records become INSERT statements.

Examples:
  # Retrieval updates, full column set
  trimble-export export continuous retrievals_2024.csv

  # Coordinates only
  trimble-export export continuous retrievals_2024.csv --mode latlong

  # Deployment inserts bounded to the field season
  trimble-export export continuous deployments_2024.csv \
    --operation deployment-insert --window-start 2024-05-24 --window-end 2024-06-21

When no input file is given, source.path from the configuration is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runContinuousExport,
}

func init() {
	exportCmd.AddCommand(continuousExportCmd)

	continuousExportCmd.Flags().StringVar(&exportOperation, "operation", string(continuous.RetrievalUpdate), "Statement kind (retrieval-update, deployment-insert)")
	continuousExportCmd.Flags().StringVar(&exportMode, "mode", "", "Update column set (full, latlong); overrides config")
	continuousExportCmd.Flags().StringVar(&exportOut, "out", "", "Output script path (default: derived from the input name)")
	continuousExportCmd.Flags().StringVar(&exportWindowStart, "window-start", "", "First accepted retrieval date (inclusive)")
	continuousExportCmd.Flags().StringVar(&exportWindowEnd, "window-end", "", "Last accepted retrieval date (inclusive)")
	continuousExportCmd.Flags().BoolVar(&exportKeepComments, "keep-comments", false, "Include field notes in the statements")

	RootCmd.AddCommand(exportCmd)
}

func runContinuousExport(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	input, err := resolveInput(args, cfg.Source)
	if err != nil {
		return err
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Flags override the configured run settings
	if exportMode != "" {
		cfg.Export.Mode = exportMode
	}
	if exportWindowStart != "" {
		cfg.Export.WindowStart = exportWindowStart
	}
	if exportWindowEnd != "" {
		cfg.Export.WindowEnd = exportWindowEnd
	}
	if cmd.Flags().Changed("keep-comments") {
		cfg.Export.KeepComments = exportKeepComments
	}

	op := continuous.Operation(exportOperation)

	l.Info("Starting continuous export",
		zap.String("input", input),
		zap.String("operation", string(op)),
		zap.String("mode", cfg.Export.Mode),
	)

	// Read the field records
	records, err := source.ReadFile(input, cfg.Source)
	if err != nil {
		return err
	}

	// Run the pipeline
	exporter, err := continuous.NewExporter(cfg.Export, l)
	if err != nil {
		return err
	}

	plan, err := exporter.Run(records, op)
	if err != nil {
		return err
	}

	// Write the script
	out := exportOut
	if out == "" {
		out = defaultScriptName(input, op)
	}

	header := continuous.NewScriptHeader(filepath.Base(input), op)
	if err := continuous.WriteScriptFile(out, header, plan); err != nil {
		return err
	}

	printExportReport(plan, out)

	return nil
}

// resolveInput picks the field data file: the command argument when given,
// the configured source.path otherwise.
func resolveInput(args []string, cfg source.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Path != "" {
		return cfg.Path, nil
	}
	return "", fmt.Errorf("no input file: pass one as an argument or set source.path")
}

// defaultScriptName derives the script path from the input name, mirroring
// the <source>_<kind>.sql convention reviewers already know.
func defaultScriptName(input string, op continuous.Operation) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if op == continuous.DeploymentInsert {
		return base + "_Continuous_Insert.sql"
	}
	return base + "_Continuous_Update.sql"
}

// printExportReport prints the human-facing run report: statement count,
// then every skipped row with its reason so omissions are visible in the
// same pass as the output.
func printExportReport(plan *export.Plan, out string) {
	color.Green("✓ %d statements written to %s", plan.Summary.Rendered, out)

	if len(plan.Skips) == 0 {
		return
	}

	color.Yellow("%d of %d rows skipped:", len(plan.Skips), plan.Summary.TotalRecords)
	for _, sk := range plan.Skips {
		color.Yellow("  row %d site %q: %v", sk.Row, sk.SiteName, sk.Reason)
	}
}
