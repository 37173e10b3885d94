package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nimblemo/bodygraph/internal/bodygraph"
	"github.com/nimblemo/bodygraph/internal/catalog"
	"github.com/nimblemo/bodygraph/internal/config"
	"github.com/nimblemo/bodygraph/internal/wheel"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the constant tables and catalog data",
	Long: `Validate checks the gate wheel, the gate-to-center map, the channel
table, and every catalog language, including any overrides in the configured
data directory. It exits non-zero if anything is inconsistent.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	checks := []struct {
		name string
		fn   func() error
	}{
		{"gate wheel", wheel.Validate},
		{"center and channel tables", bodygraph.ValidateTables},
	}
	for _, lang := range catalog.Languages() {
		lang := lang
		checks = append(checks, struct {
			name string
			fn   func() error
		}{
			name: fmt.Sprintf("catalog %q", lang),
			fn: func() error {
				_, err := catalog.Load(cfg.DataDir, lang)
				return err
			},
		})
	}

	failed := 0
	for _, check := range checks {
		if err := check.fn(); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", check.name, err)
			failed++
			continue
		}
		fmt.Fprintf(os.Stderr, "✓ %s\n", check.name)
	}

	if failed > 0 {
		return fmt.Errorf("%d validation checks failed", failed)
	}
	return nil
}
