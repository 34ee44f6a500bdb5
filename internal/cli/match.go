package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/baseballlmb/rostermatch/internal/model"
	"github.com/baseballlmb/rostermatch/internal/pipeline"
)

var (
	outJSON      string
	outMD        string
	threshold    float64
	refSource    string
	refCSV       string
	databaseURL  string
	previewRows  int
	noCache      bool
	matchTimeout time.Duration
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <file>",
	Short: "Extract a roster file and reconcile its names",
	Long: `Match processes a single roster document:
- Detect the section layout (side by side or stacked)
- Extract player names and positions
- Partition records into batters, pitchers and staff
- Reconcile every name against the trackman reference list
- Report matches with similarity scores and a quality verdict

Example:
  rostermatch match roster.xlsx
  rostermatch match roster.pdf --threshold 85 --json report.json
  rostermatch match roster.csv --reference csv --reference-csv names.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	// Output flags
	matchCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	matchCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	addMatchingFlags(matchCmd)
	matchCmd.Flags().DurationVar(&matchTimeout, "timeout", 2*time.Minute, "overall processing timeout")
}

// addMatchingFlags registers the flags shared by match and batch.
func addMatchingFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&threshold, "threshold", 90, "minimum similarity score (0-100) to accept a match")
	cmd.Flags().StringVar(&refSource, "reference", "", "reference source (csv, postgres, embedded)")
	cmd.Flags().StringVar(&refCSV, "reference-csv", "", "CSV file with canonical names (csv source)")
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Postgres connection string (postgres source)")
	cmd.Flags().IntVar(&previewRows, "preview", 5, "extracted records echoed back in the report")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the reference name cache")
}

// buildConfig merges defaults, config file values and flags.
func buildConfig(cmd *cobra.Command) *model.Config {
	cfg := model.DefaultConfig()

	// Config file values apply when the flag was not set explicitly.
	if !cmd.Flags().Changed("threshold") && viper.IsSet("threshold") {
		cfg.Threshold = viper.GetFloat64("threshold")
	} else {
		cfg.Threshold = threshold
	}
	if !cmd.Flags().Changed("reference") && viper.IsSet("reference.source") {
		cfg.Reference.Source = viper.GetString("reference.source")
	} else if refSource != "" {
		cfg.Reference.Source = refSource
	}
	if !cmd.Flags().Changed("reference-csv") && viper.IsSet("reference.csv_path") {
		cfg.Reference.CSVPath = viper.GetString("reference.csv_path")
	} else {
		cfg.Reference.CSVPath = refCSV
	}
	if !cmd.Flags().Changed("database-url") && viper.IsSet("reference.database_url") {
		cfg.Reference.DatabaseURL = viper.GetString("reference.database_url")
	} else {
		cfg.Reference.DatabaseURL = databaseURL
	}
	if viper.IsSet("reference.seasons") {
		cfg.Reference.Seasons = viper.GetStringSlice("reference.seasons")
	}

	// A CSV path or database URL implies its source when none is named.
	if cfg.Reference.Source == "embedded" {
		switch {
		case cfg.Reference.CSVPath != "":
			cfg.Reference.Source = "csv"
		case cfg.Reference.DatabaseURL != "":
			cfg.Reference.Source = "postgres"
		}
	}

	cfg.PreviewRows = previewRows
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose

	return cfg
}

func runMatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), matchTimeout)
	defer cancel()

	cfg := buildConfig(cmd)

	if verbose {
		fmt.Fprintf(os.Stderr, "Processing: %s\n", file)
		fmt.Fprintf(os.Stderr, "Threshold: %.0f\n", cfg.Threshold)
		fmt.Fprintf(os.Stderr, "Reference: %s\n", cfg.Reference.Source)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	report := p.ProcessFile(ctx, file)
	if err := p.RenderReport(report, outJSON, outMD); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if report.Failed() {
		return fmt.Errorf("process %s: %s", file, report.Error)
	}
	return nil
}
