package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/baseballlmb/rostermatch/internal/model"
	"github.com/baseballlmb/rostermatch/internal/pipeline"
)

var (
	namesRole    string
	namesTimeout time.Duration
)

// namesCmd represents the names command
var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Print the canonical reference names",
	Long: `Names resolves and prints the reference name list the matcher would
use, one name per line. Useful for checking what the configured source
actually serves before running a match.

Example:
  rostermatch names
  rostermatch names --role pitchers --reference-csv names.csv`,
	Args: cobra.NoArgs,
	RunE: runNames,
}

func init() {
	rootCmd.AddCommand(namesCmd)

	namesCmd.Flags().StringVar(&namesRole, "role", "", "limit to one partition (batters, pitchers, staff)")
	namesCmd.Flags().DurationVar(&namesTimeout, "timeout", time.Minute, "reference fetch timeout")
	addMatchingFlags(namesCmd)
}

func runNames(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), namesTimeout)
	defer cancel()

	cfg := buildConfig(cmd)
	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	set, warnings := p.ReferenceNames(ctx)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	var names []string
	switch namesRole {
	case model.PartitionBatters:
		names = set.Batters
	case model.PartitionPitchers:
		names = set.Pitchers
	case model.PartitionStaff, "":
		names = set.Union()
	default:
		return fmt.Errorf("unknown role %q", namesRole)
	}

	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}
