// Package analyzer sequences the analytical components for one request:
// classification, statement reconstruction, ratios, cash-flow reconciliation,
// variance analysis, pro-forma projection and the narrative diagnosis, then
// assembles the response envelope. One call is one pure, synchronous
// computation; nothing is shared between requests except the classifier's
// read-only rule table.
package analyzer

import (
	"fmt"
	"strings"

	"finanalyzer/internal/cashflow"
	"finanalyzer/internal/classifier"
	"finanalyzer/internal/logging"
	"finanalyzer/internal/models"
	"finanalyzer/internal/narrative"
	"finanalyzer/internal/proforma"
	"finanalyzer/internal/ratios"
	"finanalyzer/internal/statement"
	"finanalyzer/internal/variance"
)

// Options tunes per-request analysis policy.
type Options struct {
	// HorizontalStrategy selects the horizontal comparison pairs.
	HorizontalStrategy variance.Strategy
	// SkipAggregateRows drops pre-aggregated lines ("TOTAL ...") before
	// classification so they do not double-count against primary accounts.
	SkipAggregateRows bool
}

// DefaultOptions matches the behavior of the original analysis endpoint.
func DefaultOptions() Options {
	return Options{
		HorizontalStrategy: variance.StrategyConsecutive,
		SkipAggregateRows:  true,
	}
}

// Service runs analyses. Safe for concurrent use: all working data is
// request-local.
type Service struct {
	classifier *classifier.Classifier
	logger     logging.Logger
}

// New creates an analysis Service.
func New(c *classifier.Classifier, logger logging.Logger) *Service {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	if c == nil {
		c = classifier.New(logger)
	}
	return &Service{classifier: c, logger: logger}
}

// Analyze runs the full multi-year analysis over the supplied records.
// Records may arrive in any order; all years must be supplied together.
// Empty input yields a minimal no-data report, not an error. An unexpected
// internal fault is returned as an error with no partial result.
func (s *Service) Analyze(records []models.LedgerRecord, opts Options) (report *models.AnalysisReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			report = nil
			err = fmt.Errorf("internal analysis failure: %v", r)
		}
	}()

	if opts.HorizontalStrategy == "" {
		opts.HorizontalStrategy = variance.StrategyConsecutive
	}

	working := normalize(records)
	if opts.SkipAggregateRows {
		working = dropAggregates(working)
	}
	if len(working) == 0 {
		return models.EmptyReport("no data"), nil
	}

	classified := s.classifier.ClassifyAll(working)
	statements := statement.Build(classified)
	years := statement.Years(statements)

	s.logger.WithFields(
		logging.Field{Key: logging.FieldRecords, Value: len(working)},
		logging.Field{Key: logging.FieldYears, Value: len(years)},
	).Info("Running financial analysis")

	snapshots := make([]models.RatioSnapshot, 0, len(years))
	flows := []models.CashFlowStatement{}
	for i, year := range years {
		var previous *models.Statement
		if i > 0 {
			previous = statements[years[i-1]]
		}
		snapshots = append(snapshots, ratios.Snapshot(statements[year], previous))
		if flow := cashflow.Reconcile(statements[year], previous); flow != nil {
			flows = append(flows, *flow)
		}
	}

	projection := proforma.Project(statements, years)

	report = &models.AnalysisReport{
		Ratios:     snapshots,
		CashFlows:  flows,
		Vertical:   variance.Vertical(classified, statements),
		Horizontal: variance.Horizontal(classified, opts.HorizontalStrategy),
		Statements: statements,
		Proforma:   projection,
		Conclusion: narrative.Generate(snapshots, projection),
		Warnings:   collectWarnings(statements, years),
	}
	return report, nil
}

// normalize copies the input with trimmed, upper-cased account names. The
// caller's slice is never mutated.
func normalize(records []models.LedgerRecord) []models.LedgerRecord {
	normalized := make([]models.LedgerRecord, len(records))
	for i, r := range records {
		r.AccountName = upperTrim(r.AccountName)
		normalized[i] = r
	}
	return normalized
}

func upperTrim(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func dropAggregates(records []models.LedgerRecord) []models.LedgerRecord {
	kept := records[:0:0]
	for _, r := range records {
		if !classifier.IsAggregateRow(r.AccountName) {
			kept = append(kept, r)
		}
	}
	return kept
}

func collectWarnings(statements map[int]*models.Statement, years []int) []string {
	var warnings []string
	for _, year := range years {
		if w := statements[year].BalanceSheet.BalanceWarning; w != "" {
			warnings = append(warnings, w)
		}
	}
	return warnings
}
