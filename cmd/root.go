package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nimblemo/bodygraph/internal/bodygraph"
	"github.com/nimblemo/bodygraph/internal/wheel"
)

var rootCmd = &cobra.Command{
	Use:   "bodygraph",
	Short: "Human Design chart calculator",
	Long:  "Bodygraph computes Human Design charts from birth date, time, and UTC offset: activations, channels, centers, Type, Authority, Profile, and Incarnation Cross.",
}

// Execute validates the constant tables once and runs the root command. A
// table defect means the engine must refuse to serve any chart, so it is
// fatal here rather than per invocation.
func Execute() {
	if err := wheel.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := bodygraph.ValidateTables(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .bodygraph.yaml)")
	rootCmd.PersistentFlags().StringP("lang", "l", "en", "catalog language")
	rootCmd.PersistentFlags().String("data-dir", "", "directory with catalog overrides")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".bodygraph")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("BODYGRAPH")
	viper.AutomaticEnv()

	_ = viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("lang"))
	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
