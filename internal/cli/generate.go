package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/mixupcube/internal/heuristic"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one heuristic table via exhaustive BFS",
	Long: `Generate runs the iterative-deepening BFS for a single registered
heuristic and writes its table (plus an integrity checksum) under
--heuristics-dir. This can take a long time for the larger edge/face
tables.`,
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("heuristic")
		log := newLogger()

		h, err := heuristic.Lookup(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			fmt.Fprintf(os.Stderr, "known heuristics:")
			for _, known := range heuristic.Registry {
				fmt.Fprintf(os.Stderr, " %s", known.Name)
			}
			fmt.Fprintln(os.Stderr)
			os.Exit(1)
		}

		table, err := heuristic.Generate(h, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
			os.Exit(1)
		}

		if err := heuristic.Save(h, cfg.HeuristicsDir, table); err != nil {
			fmt.Fprintf(os.Stderr, "saving failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("wrote %s\n", h.FilePath(cfg.HeuristicsDir))
	},
}

func init() {
	generateCmd.Flags().String("heuristic", "corners", "which registered heuristic to generate")
}
