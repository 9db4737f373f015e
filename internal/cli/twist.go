package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/mixupcube/internal/cube"
	"github.com/ehrlich-b/mixupcube/internal/mfen"
)

var twistCmd = &cobra.Command{
	Use:   "twist",
	Short: "Apply a sequence of turns to a cube state",
	Long: `Twist applies --turns (notation like "R U R' U'", or slice turns like
"M2 E S7") to --state and prints the resulting mfen. The sequence is
collapsed (same-face/slice repeats merged, cancellations dropped) before
it's applied.`,
	Run: func(cmd *cobra.Command, args []string) {
		state, _ := cmd.Flags().GetString("state")
		turnsArg, _ := cmd.Flags().GetString("turns")

		c, err := mfen.Parse(state)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --state: %v\n", err)
			os.Exit(1)
		}

		turns, err := cube.ParseTurns(turnsArg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --turns: %v\n", err)
			os.Exit(1)
		}

		if cube.IsCancellingSequence(turns) {
			fmt.Fprintln(os.Stderr, "note: turn sequence cancels out and leaves the cube unchanged")
		}

		optimizedNotation, err := cube.OptimizeNotation(turnsArg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --turns: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "applied: %s (%d moves)\n", optimizedNotation, cube.TurnCount(turns))

		for _, t := range cube.OptimizeTurns(turns) {
			cube.Turn(c, t)
		}

		fmt.Println(mfen.Format(c))
	},
}

func init() {
	twistCmd.Flags().String("state", "-26", "cube state in mfen notation (default: solved)")
	twistCmd.Flags().String("turns", "", "turns to apply, in notation form")
}
