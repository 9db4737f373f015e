package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/mixupcube/internal/cube"
	"github.com/ehrlich-b/mixupcube/internal/heuristic"
	"github.com/ehrlich-b/mixupcube/internal/mfen"
	"github.com/ehrlich-b/mixupcube/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find the shortest solution for a cube state",
	Long: `Solve loads every generated heuristic table it can find, then runs an
iterative-deepening search for the shortest turn sequence back to solved.`,
	Run: func(cmd *cobra.Command, args []string) {
		state, _ := cmd.Flags().GetString("state")
		log := newLogger()

		c, err := mfen.Parse(state)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --state: %v\n", err)
			os.Exit(1)
		}

		set := heuristic.NewSet()
		set.LoadAll(cfg.HeuristicsDir, log)
		log.WithField("heuristics", set.Names()).Info("solving")

		turns := solver.Solve(c, set, cfg.MaxDepth)
		printSolution(turns)
	},
}

func init() {
	solveCmd.Flags().String("state", "-26", "cube state in mfen notation (default: solved)")
}

// printSolution renders a solver.Solve/SolveToCubeShape result: nil means
// no solution was found within --max-depth, the lone SolutionTerminator
// sentinel means the state was already solved, and otherwise each
// solution segment is re-collapsed with cube.OptimizeTurns before
// printing (the search itself never produces combinable adjacent turns,
// but presentation shouldn't rely on that silently).
func printSolution(turns []int) {
	if turns == nil {
		fmt.Println("no solution found within --max-depth")
		return
	}
	if len(turns) == 1 && turns[0] == cube.SolutionTerminator {
		fmt.Println("already solved")
		return
	}

	var segment []int
	flush := func() {
		optimized := cube.OptimizeTurns(segment)
		fmt.Printf("%s (%d moves) ", cube.FormatTurns(optimized), cube.TurnCount(segment))
		segment = segment[:0]
	}
	for _, t := range turns {
		switch t {
		case cube.SolutionTerminator:
			flush()
		case cube.SolutionSeparator:
			flush()
			fmt.Print("| ")
		default:
			segment = append(segment, t)
		}
	}
	fmt.Println()
}
