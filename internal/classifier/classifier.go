// Package classifier assigns a subclass to every ledger record using keyword
// pattern matching against an ordered rule table. Classification is pure and
// deterministic: the account name is upper-cased, rules for the record's type
// are evaluated top to bottom, the first matching keyword wins, and unmatched
// input degrades to a type-specific default instead of failing.
package classifier

import (
	"strings"

	"finanalyzer/internal/logging"
	"finanalyzer/internal/models"
)

// Rule maps a keyword set to a subclass for one account type. Rules are
// evaluated in slice order; order matters for overlapping vocabularies.
type Rule struct {
	Type     models.AccountType `yaml:"type"`
	SubClass models.SubClass    `yaml:"subclass"`
	Keywords []string           `yaml:"keywords"`
}

// Classifier evaluates an ordered rule table. The table is read-only after
// construction, so a single Classifier is safe to share across requests.
type Classifier struct {
	rules  []Rule
	logger logging.Logger
}

// New creates a Classifier with the built-in rule table.
func New(logger logging.Logger) *Classifier {
	return NewWithRules(DefaultRules(), logger)
}

// NewWithRules creates a Classifier with a custom rule table. Custom rules
// loaded from configuration are merged ahead of the built-in table so they
// win on first match.
func NewWithRules(rules []Rule, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Classifier{rules: rules, logger: logger}
}

// Classify returns the subclass for an account name and its top-level type.
// No error condition: unmatched input falls back to the type default.
func (c *Classifier) Classify(accountName string, accountType models.AccountType) models.SubClass {
	name := strings.ToUpper(strings.TrimSpace(accountName))

	for _, rule := range c.rules {
		if rule.Type != accountType {
			continue
		}
		for _, keyword := range rule.Keywords {
			if strings.Contains(name, strings.ToUpper(keyword)) {
				c.logger.WithFields(
					logging.Field{Key: logging.FieldAccount, Value: accountName},
					logging.Field{Key: logging.FieldKeyword, Value: keyword},
					logging.Field{Key: logging.FieldSubClass, Value: rule.SubClass},
				).Debug("Account classified by keyword match")
				return rule.SubClass
			}
		}
	}

	return DefaultSubClass(accountType)
}

// ClassifyAll derives the subclass for every record.
func (c *Classifier) ClassifyAll(records []models.LedgerRecord) []models.ClassifiedRecord {
	classified := make([]models.ClassifiedRecord, 0, len(records))
	for _, r := range records {
		classified = append(classified, models.ClassifiedRecord{
			LedgerRecord: r,
			SubClass:     c.Classify(r.AccountName, r.Type),
		})
	}
	return classified
}

// DefaultSubClass is the fallback when no keyword rule matches.
func DefaultSubClass(accountType models.AccountType) models.SubClass {
	switch accountType {
	case models.TypeAsset:
		return models.SubNonCurrentAsset
	case models.TypeLiability:
		return models.SubNonCurrentLiability
	case models.TypeExpense:
		return models.SubOperatingExpense
	case models.TypeRevenue:
		return models.SubRevenue
	case models.TypeEquity:
		return models.SubEquity
	}
	return models.SubClass(accountType)
}

// aggregateMarkers flags account names that are pre-aggregated report lines
// rather than primary accounts (e.g. "TOTAL ACTIVOS").
var aggregateMarkers = []string{"TOTAL", "SUBTOTAL", "SUMA"}

// IsAggregateRow reports whether the account name looks like a pre-aggregated
// total line. Such rows can be excluded from statement construction entirely.
func IsAggregateRow(accountName string) bool {
	name := strings.ToUpper(accountName)
	for _, marker := range aggregateMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}
