// Package serve runs the HTTP analysis server
package serve

import (
	"github.com/spf13/cobra"

	"finanalyzer/cmd/root"
	"finanalyzer/internal/analyzer"
	"finanalyzer/internal/ingest"
	"finanalyzer/internal/server"
)

var addr string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis server",
	Long: `Run the HTTP server exposing POST /analyze, POST /upload-csv and
GET /health. CORS origins, listen address and analysis policy come from the
configuration.`,
	Run: serveFunc,
}

func serveFunc(cmd *cobra.Command, args []string) {
	logger := root.Logger()

	svc := analyzer.New(root.BuildClassifier(), logger)
	reader := ingest.NewReader(logger)
	srv := server.New(svc, reader, root.AnalysisOptions(), root.Cfg.Server.CORSOrigins, logger)

	listenAddr := addr
	if listenAddr == "" {
		listenAddr = root.Cfg.Server.Addr
	}
	if err := srv.ListenAndServe(listenAddr); err != nil {
		root.Log.Fatalf("HTTP server failed: %v", err)
	}
}

func init() {
	Cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides configuration)")
}
