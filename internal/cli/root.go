// Package cli implements the mixupcube command-line front end: one cobra
// subcommand per solver operation, each owning its own flags.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ehrlich-b/mixupcube/internal/config"
	"github.com/ehrlich-b/mixupcube/internal/logging"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "mixupcube",
	Short: "A Mixup Cube (3x3x3 with a 45-degree-turning center slice) solver",
	Long: `mixupcube searches for shortest solutions to the Mixup Cube, a Rubik's
Cube variant whose middle slices turn by 45 degrees, letting face pieces
wander into edge positions and back.`,
	Version: "1.0.0",
}

// Execute runs the root command, dispatching to whichever subcommand the
// user invoked.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cfg = config.FromEnvironment()

	rootCmd.PersistentFlags().StringVar(&cfg.HeuristicsDir, "heuristics-dir", cfg.HeuristicsDir, "directory holding generated heuristic table files")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "cap on IDDFS rounds attempted before giving up (guards against malformed input)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(shapeCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the shared logger each subcommand uses, level-configured
// from the persistent --log-level flag.
func newLogger() *logrus.Logger {
	return logging.New(cfg.LogLevel)
}
