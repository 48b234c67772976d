// Package variance computes vertical (common-size) and horizontal
// (year-over-year) variance analysis from classified records and the per-year
// statement totals.
package variance

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"finanalyzer/internal/models"
)

// Strategy selects how horizontal comparison pairs are formed.
type Strategy string

const (
	// StrategyConsecutive compares every year against the year before it.
	StrategyConsecutive Strategy = "consecutive"
	// StrategyFixedBase compares every later year against the earliest year.
	StrategyFixedBase Strategy = "fixed_base"
)

// ParseStrategy validates a raw strategy string, defaulting to consecutive.
func ParseStrategy(raw string) (Strategy, error) {
	switch Strategy(raw) {
	case StrategyConsecutive, "":
		return StrategyConsecutive, nil
	case StrategyFixedBase:
		return StrategyFixedBase, nil
	}
	return "", fmt.Errorf("unknown horizontal strategy: %q", raw)
}

// Vertical expresses every record as a percentage of its year's base total.
// Asset rows use total assets, liability and equity rows the claims-side
// total, revenue and expense rows net sales. One entry per input record, in
// input order, not deduplicated.
func Vertical(records []models.ClassifiedRecord, statements map[int]*models.Statement) []models.VerticalEntry {
	entries := make([]models.VerticalEntry, 0, len(records))
	for _, r := range records {
		stmt, ok := statements[r.Year]
		if !ok {
			continue
		}
		var base decimal.Decimal
		switch r.Type {
		case models.TypeAsset:
			base = stmt.BalanceSheet.Assets.Total
		case models.TypeLiability, models.TypeEquity:
			base = stmt.BalanceSheet.TotalLiabEquity
		default:
			base = stmt.IncomeStatement.NetSales
		}
		entries = append(entries, models.VerticalEntry{
			ClassifiedRecord: r,
			Pct:              models.SafeDivPct(r.Value, base),
		})
	}
	return entries
}

// Horizontal pivots records by account name across years (summing duplicate
// name+year pairs) and reports absolute and percentage change for every
// comparison pair produced by the strategy. Percentage change is zero when
// the base value is zero. Accounts are emitted in name order so repeated
// invocations produce identical output.
func Horizontal(records []models.ClassifiedRecord, strategy Strategy) []models.HorizontalEntry {
	pivot := make(map[string]map[int]decimal.Decimal)
	yearSet := make(map[int]struct{})
	for _, r := range records {
		if pivot[r.AccountName] == nil {
			pivot[r.AccountName] = make(map[int]decimal.Decimal)
		}
		pivot[r.AccountName][r.Year] = pivot[r.AccountName][r.Year].Add(r.Value)
		yearSet[r.Year] = struct{}{}
	}

	years := make([]int, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Ints(years)
	if len(years) < 2 {
		return []models.HorizontalEntry{}
	}

	accounts := make([]string, 0, len(pivot))
	for account := range pivot {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	entries := []models.HorizontalEntry{}
	for _, account := range accounts {
		for i := 1; i < len(years); i++ {
			baseYear := years[i-1]
			if strategy == StrategyFixedBase {
				baseYear = years[0]
			}
			year := years[i]
			baseValue := pivot[account][baseYear]
			value := pivot[account][year]
			varAbs := value.Sub(baseValue)
			entries = append(entries, models.HorizontalEntry{
				Period:    fmt.Sprintf("%d-%d", baseYear, year),
				Account:   account,
				YearBase:  baseYear,
				Year:      year,
				BaseValue: baseValue,
				Value:     value,
				VarAbs:    varAbs,
				VarPct:    models.SafeDivPct(varAbs, baseValue),
			})
		}
	}
	return entries
}
