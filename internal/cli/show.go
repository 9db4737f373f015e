package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/mixupcube/internal/mfen"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Pretty-print a cube state",
	Run: func(cmd *cobra.Command, args []string) {
		state, _ := cmd.Flags().GetString("state")

		c, err := mfen.Parse(state)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --state: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(c.Print())
	},
}

func init() {
	showCmd.Flags().String("state", "-26", "cube state in mfen notation (default: solved)")
}
