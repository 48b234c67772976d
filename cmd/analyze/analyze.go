// Package analyze runs the analysis engine over a ledger CSV file
package analyze

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"finanalyzer/cmd/root"
	"finanalyzer/internal/analyzer"
	"finanalyzer/internal/ingest"
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a ledger CSV file",
	Long: `Read labeled ledger entries from a CSV file, run the full multi-year
analysis and write the report as JSON to the output file or stdout.`,
	Run: analyzeFunc,
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file is required (--input)")
	}

	logger := root.Logger()
	reader := ingest.NewReader(logger)
	records, err := reader.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading ledger file: %v", err)
	}

	svc := analyzer.New(root.BuildClassifier(), logger)
	report, err := svc.Analyze(records, root.AnalysisOptions())
	if err != nil {
		root.Log.Fatalf("Error running analysis: %v", err)
	}

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		root.Log.Fatalf("Error encoding report: %v", err)
	}

	if root.SharedFlags.Output == "" {
		fmt.Println(string(payload))
		return
	}
	if err := os.WriteFile(root.SharedFlags.Output, payload, 0o644); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	root.Log.Infof("Report written to %s", root.SharedFlags.Output)
}
