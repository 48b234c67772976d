// Package classify resolves the subclass for a single account name
package classify

import (
	"github.com/spf13/cobra"

	"finanalyzer/cmd/root"
	"finanalyzer/internal/models"
)

var (
	accountName string
	accountType string
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a single account name",
	Long:  `Resolve the subclass the engine would assign to an account name and type.`,
	Run:   classifyFunc,
}

func classifyFunc(cmd *cobra.Command, args []string) {
	parsedType, err := models.ParseAccountType(accountType)
	if err != nil {
		root.Log.Fatalf("Error: %v (one of asset, liability, equity, revenue, expense)", err)
	}

	c := root.BuildClassifier()
	subClass := c.Classify(accountName, parsedType)
	root.Log.Infof("Account %q (%s) classified as: %s", accountName, parsedType, subClass)
}

func init() {
	Cmd.Flags().StringVarP(&accountName, "name", "n", "", "Account name (required)")
	Cmd.Flags().StringVarP(&accountType, "type", "t", "", "Account type (required)")
	_ = Cmd.MarkFlagRequired("name")
	_ = Cmd.MarkFlagRequired("type")
}
