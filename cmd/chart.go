package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nimblemo/bodygraph/internal/catalog"
	"github.com/nimblemo/bodygraph/internal/chart"
	"github.com/nimblemo/bodygraph/internal/config"
	"github.com/nimblemo/bodygraph/internal/ephemeris"
	"github.com/nimblemo/bodygraph/internal/render"
	"github.com/nimblemo/bodygraph/internal/store"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute a chart for one birth moment",
	Example: `  bodygraph chart --date 1990-05-15 --time 14:30 --utc +3
  bodygraph chart --date 1990-05-15 --time 14:30 --utc +3 --format json`,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringP("date", "d", "", "birth date, YYYY-MM-DD")
	chartCmd.Flags().StringP("time", "t", "", "birth time, HH:MM")
	chartCmd.Flags().StringP("utc", "u", "", "UTC offset, e.g. +3, -5, +5.5")
	chartCmd.Flags().StringP("format", "f", "", "output format: text, json, toml")
	chartCmd.Flags().Bool("save", false, "save the chart to the history store")
	_ = chartCmd.MarkFlagRequired("date")
	_ = chartCmd.MarkFlagRequired("time")
	_ = chartCmd.MarkFlagRequired("utc")

	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	date, _ := cmd.Flags().GetString("date")
	tm, _ := cmd.Flags().GetString("time")
	utc, _ := cmd.Flags().GetString("utc")
	in, err := parseInput(date, tm, utc)
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.DataDir, cfg.Language)
	if err != nil {
		return err
	}

	c, err := chart.Assemble(ephemeris.AnalyticProvider{}, in, cat.AngleTable())
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Format
	}
	out, err := encodeChart(c, cat, format)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, out)

	save, _ := cmd.Flags().GetBool("save")
	if save || cfg.SaveCharts {
		id, err := saveChart(cmd.Context(), cfg.StorePath, c)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved as chart %d\n", id)
	}
	return nil
}

func encodeChart(c *chart.Chart, cat *catalog.Catalog, format string) (string, error) {
	switch format {
	case "text", "":
		return render.Text(c, cat), nil
	case "json":
		data, err := render.JSON(c)
		return string(data), err
	case "toml":
		data, err := render.TOML(c)
		return string(data), err
	}
	return "", fmt.Errorf("unknown format %q, expected text, json, or toml", format)
}

func saveChart(ctx context.Context, path string, c *chart.Chart) (int64, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(ctx, path)
	if err != nil {
		return 0, err
	}
	defer st.Close()
	return st.Save(ctx, c)
}
