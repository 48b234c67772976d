// Package convert turns a ledger CSV into normalized record JSON
package convert

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"finanalyzer/cmd/root"
	"finanalyzer/internal/ingest"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a ledger CSV to normalized record JSON",
	Long: `Validate a ledger CSV file and emit the normalized records the engine
consumes, without running the analysis. Useful for checking an upload before
sending it to the server.`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file is required (--input)")
	}

	reader := ingest.NewReader(root.Logger())
	records, err := reader.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading ledger file: %v", err)
	}

	payload, err := json.MarshalIndent(map[string]any{"data": records}, "", "  ")
	if err != nil {
		root.Log.Fatalf("Error encoding records: %v", err)
	}

	if root.SharedFlags.Output == "" {
		fmt.Println(string(payload))
		return
	}
	if err := os.WriteFile(root.SharedFlags.Output, payload, 0o644); err != nil {
		root.Log.Fatalf("Error writing records: %v", err)
	}
	root.Log.Infof("Records written to %s", root.SharedFlags.Output)
}
