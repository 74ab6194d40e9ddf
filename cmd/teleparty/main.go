// Command teleparty ingests the TV show ratings CSVs into a fresh SQLite
// database and prints the four-section analytics report.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kushalreddykasarla/Teleparty-DE-Coding-Challenge/internal/config"
	"github.com/kushalreddykasarla/Teleparty-DE-Coding-Challenge/internal/logging"
)

var (
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "teleparty",
	Short: "Ingest TV show ratings into SQLite and print the analytics report",
	Long: `teleparty is a one-shot batch pipeline. It loads the shows and
episode-ratings CSV files into a fresh SQLite database, then prints four
report sections: low-rated shows, low-rated shows spanning more than one
season, and the top and bottom performers by rank and rating count.

Run without arguments to execute the whole pipeline. The input file names
and database path come from teleparty.yaml when present, defaults otherwise.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(verbose || cfg.Logging.Verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runIngest(cmd); err != nil {
			return err
		}
		return runReport(cmd)
	},
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the CSV files into a fresh database without reporting",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIngest(cmd)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the report from an already-ingested database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to config file")
	rootCmd.AddCommand(ingestCmd, reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
