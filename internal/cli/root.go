// Package cli wires the searchlab commands together.
package cli

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/searchlab/internal/config"
)

const version = "1.0.0"

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "searchlab",
	Short: "Benchmark dataset generation and search algorithm timing",
	Long: `Searchlab generates integer benchmark datasets (sorted, sparse,
duplicate-heavy, negative-range) and measures jump search against
interpolation search over them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath
		}
		loaded, err := config.LoadOrDefault(path)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./searchlab.yaml)")
}
