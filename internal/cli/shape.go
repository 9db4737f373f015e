package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/mixupcube/internal/mfen"
	"github.com/ehrlich-b/mixupcube/internal/solver"
)

var shapeCmd = &cobra.Command{
	Use:   "shape",
	Short: "Find the shortest solution back to cube shape (not necessarily solved)",
	Long: `Shape searches for the shortest turn sequence that returns the cube to
an ordinary, non-mixed-up shape: every edge slot holding an edge piece.
Heuristics are never used for this search; see the solver package docs.`,
	Run: func(cmd *cobra.Command, args []string) {
		state, _ := cmd.Flags().GetString("state")

		c, err := mfen.Parse(state)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --state: %v\n", err)
			os.Exit(1)
		}

		turns := solver.SolveToCubeShape(c, cfg.MaxDepth)
		printSolution(turns)
	},
}

func init() {
	shapeCmd.Flags().String("state", "-26", "cube state in mfen notation (default: solved)")
}
