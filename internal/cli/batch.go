package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/baseballlmb/rostermatch/internal/pipeline"
	"github.com/baseballlmb/rostermatch/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <input>",
	Short: "Process multiple roster files in parallel",
	Long: `Batch processes many roster documents concurrently:
- Input may be a directory, a .txt list of paths, or a single file
- Files are processed in parallel with a configurable worker count
- Each file gets its own JSON report in the output directory

Example:
  rostermatch batch ./rosters
  rostermatch batch rosters.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./rostermatch-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	addMatchingFlags(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig(cmd)
	cfg.Concurrency.Workers = concurrency

	paths, err := worker.CollectFiles(input)
	if err != nil {
		return fmt.Errorf("collect files: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no roster files found in %s", input)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Processing %d files with %d workers...\n\n", len(paths), concurrency)

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(p, concurrency)
	reports := processor.Process(ctx, paths)

	renderer := pipeline.NewRenderer()
	successCount := 0
	failureCount := 0
	for _, report := range reports {
		if report.Failed() {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %s\n", report.File, report.Error)
			continue
		}
		successCount++

		jsonPath := filepath.Join(outputDir, reportSlug(report.File)+".json")
		if err := renderer.RenderJSON(report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", report.File, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s: %d players, %d matched (%s)\n",
			report.File, report.TotalPlayers, report.Totals["matched"], report.Quality.Confidence)
	}

	fmt.Fprintf(os.Stderr, "\nBatch complete: %d files, %d succeeded, %d failed, reports in %s\n",
		len(reports), successCount, failureCount, outputDir)

	if failureCount > 0 {
		return fmt.Errorf("%d of %d files failed", failureCount, len(reports))
	}
	return nil
}

// reportSlug derives a report file name from a roster path.
func reportSlug(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		case ' ':
			return '-'
		}
		return r
	}, base)
	if len(base) > 100 {
		base = base[:100]
	}
	return base
}
