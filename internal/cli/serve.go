package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/mixupcube/internal/heuristic"
	"github.com/ehrlich-b/mixupcube/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the HTTP API, loading every generated heuristic table it can
find under --heuristics-dir before accepting requests.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")
		timeoutSeconds, _ := cmd.Flags().GetInt("solve-timeout")
		log := newLogger()

		set := heuristic.NewSet()
		set.LoadAll(cfg.HeuristicsDir, log)
		log.WithField("heuristics", set.Names()).Info("loaded heuristics")

		addr := host + ":" + port
		log.WithField("addr", addr).Info("starting web server")

		server := web.NewServer(set, log, time.Duration(timeoutSeconds)*time.Second)
		if err := server.Start(addr); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "host to bind the server to")
	serveCmd.Flags().Int("solve-timeout", 30, "seconds before a solve/shape request returns 504")
}
