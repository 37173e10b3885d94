package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nimblemo/bodygraph/internal/batch"
	"github.com/nimblemo/bodygraph/internal/catalog"
	"github.com/nimblemo/bodygraph/internal/config"
	"github.com/nimblemo/bodygraph/internal/ephemeris"
	"github.com/nimblemo/bodygraph/internal/render"
	"github.com/nimblemo/bodygraph/internal/telemetry"
)

var batchCmd = &cobra.Command{
	Use:   "batch <jobs.toml>",
	Short: "Compute charts for every job in a TOML file",
	Long: `Batch reads a TOML file with a [[jobs]] array and computes each chart
concurrently. A failing job is reported and skipped; the rest of the run
continues.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntP("workers", "w", 0, "concurrent workers (default from config)")
	batchCmd.Flags().String("telemetry", "", "append JSONL telemetry events to this file")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	jobs, err := batch.LoadJobs(args[0])
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.DataDir, cfg.Language)
	if err != nil {
		return err
	}

	workers, _ := cmd.Flags().GetInt("workers")
	if workers < 1 {
		workers = cfg.Workers
	}

	var em *telemetry.Emitter
	if path, _ := cmd.Flags().GetString("telemetry"); path != "" {
		em, err = telemetry.NewEmitter(path)
		if err != nil {
			return err
		}
		defer em.Close()
	}

	results := batch.Run(ephemeris.AnalyticProvider{}, cat.AngleTable(), jobs, workers, em)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stdout, "%-24s FAILED: %v\n", r.Job.Label, r.Err)
			continue
		}
		fmt.Fprintf(os.Stdout, "%-24s %s\n", r.Job.Label, render.Summary(r.Chart, cat))
	}

	if failed := batch.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d jobs failed", len(failed), len(results))
	}
	return nil
}
