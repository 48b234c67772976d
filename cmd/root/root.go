// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"finanalyzer/internal/analyzer"
	"finanalyzer/internal/classifier"
	"finanalyzer/internal/config"
	"finanalyzer/internal/logging"
	"finanalyzer/internal/variance"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the resolved application configuration, available after
	// PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finanalyzer",
		Short: "A financial statement analysis engine for labeled ledger entries.",
		Long: `finanalyzer reconstructs balance sheets and income statements from flat
labeled ledger entries and produces a multi-year analysis: ratios, cash-flow
reconciliations, vertical and horizontal variance, a pro-forma projection and
a rule-based diagnosis. It runs as a CLI over CSV files or as an HTTP server.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finanalyzer!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Error loading configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// Logger returns the shared logger wrapped in the logging abstraction.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// BuildClassifier constructs the classifier from the built-in table plus any
// custom rules configured in classification.rules_file.
func BuildClassifier() *classifier.Classifier {
	custom, err := classifier.LoadRules(Cfg.Classification.RulesFile)
	if err != nil {
		Log.Fatalf("Error loading classification rules: %v", err)
	}
	if len(custom) > 0 {
		Log.WithField("rules", len(custom)).Info("Loaded custom classification rules")
	}
	return classifier.NewWithRules(classifier.MergeRules(custom, classifier.DefaultRules()), Logger())
}

// AnalysisOptions maps the configured analysis policy to engine options.
func AnalysisOptions() analyzer.Options {
	strategy, err := variance.ParseStrategy(Cfg.Analysis.HorizontalStrategy)
	if err != nil {
		Log.Fatalf("Error in analysis configuration: %v", err)
	}
	return analyzer.Options{
		HorizontalStrategy: strategy,
		SkipAggregateRows:  Cfg.Analysis.SkipAggregateRows,
	}
}
