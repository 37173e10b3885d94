package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nimblemo/bodygraph/internal/catalog"
	"github.com/nimblemo/bodygraph/internal/config"
	"github.com/nimblemo/bodygraph/internal/ephemeris"
	"github.com/nimblemo/bodygraph/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse a chart in an interactive terminal viewer",
	Long: `Tui computes one chart and shows it in a scrollable viewer. When a data
directory is configured, catalog edits reload live.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringP("date", "d", "", "birth date, YYYY-MM-DD")
	tuiCmd.Flags().StringP("time", "t", "", "birth time, HH:MM")
	tuiCmd.Flags().StringP("utc", "u", "", "UTC offset, e.g. +3, -5, +5.5")
	_ = tuiCmd.MarkFlagRequired("date")
	_ = tuiCmd.MarkFlagRequired("time")
	_ = tuiCmd.MarkFlagRequired("utc")

	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
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

	m := tui.New(in, ephemeris.AnalyticProvider{}, cat, cfg.DataDir)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
