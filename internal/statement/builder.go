// Package statement reconstructs balance sheets and income statements from
// classified ledger records, one Statement per fiscal year.
package statement

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"finanalyzer/internal/models"
)

// identityTolerance is the maximum accepted drift between the asset total and
// the liabilities+equity total before the statement is flagged.
var identityTolerance = decimal.NewFromFloat(0.01)

// Build groups records by year and subclass and reconstructs both statements
// for every year present in the input. Degenerate years (no revenue, no
// assets) build fine: all sums default to zero. The returned map is freshly
// constructed and shares no state with other calls.
func Build(records []models.ClassifiedRecord) map[int]*models.Statement {
	byYear := make(map[int][]models.ClassifiedRecord)
	for _, r := range records {
		byYear[r.Year] = append(byYear[r.Year], r)
	}

	statements := make(map[int]*models.Statement, len(byYear))
	for year, yearRecords := range byYear {
		statements[year] = buildYear(year, yearRecords)
	}
	return statements
}

// Years returns the statement years in ascending order.
func Years(statements map[int]*models.Statement) []int {
	years := make([]int, 0, len(statements))
	for year := range statements {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

func buildYear(year int, records []models.ClassifiedRecord) *models.Statement {
	var (
		assets   models.AccountGroup
		liabs    models.AccountGroup
		equity   models.EquitySection
		income   models.IncomeStatement
		totalExp = decimal.Zero
	)
	assets.Current = []models.ClassifiedRecord{}
	assets.NonCurrent = []models.ClassifiedRecord{}
	liabs.Current = []models.ClassifiedRecord{}
	liabs.NonCurrent = []models.ClassifiedRecord{}
	equity.Accounts = []models.ClassifiedRecord{}
	income.Revenues = []models.ClassifiedRecord{}
	income.Expenses = []models.ClassifiedRecord{}

	for _, r := range records {
		switch r.Type {
		case models.TypeAsset:
			if r.SubClass.IsCurrentAsset() {
				assets.Current = append(assets.Current, r)
				assets.CurrentTotal = assets.CurrentTotal.Add(r.Value)
			} else {
				assets.NonCurrent = append(assets.NonCurrent, r)
				assets.NonCurrentTotal = assets.NonCurrentTotal.Add(r.Value)
			}
		case models.TypeLiability:
			if r.SubClass.IsCurrentLiability() {
				liabs.Current = append(liabs.Current, r)
				liabs.CurrentTotal = liabs.CurrentTotal.Add(r.Value)
			} else {
				liabs.NonCurrent = append(liabs.NonCurrent, r)
				liabs.NonCurrentTotal = liabs.NonCurrentTotal.Add(r.Value)
			}
		case models.TypeEquity:
			equity.Accounts = append(equity.Accounts, r)
			equity.Contributed = equity.Contributed.Add(r.Value)
		case models.TypeRevenue:
			income.Revenues = append(income.Revenues, r)
			income.NetSales = income.NetSales.Add(r.Value)
		case models.TypeExpense:
			income.Expenses = append(income.Expenses, r)
			totalExp = totalExp.Add(r.Value)
			switch r.SubClass {
			case models.SubCOGS:
				income.COGS = income.COGS.Add(r.Value)
			case models.SubInterest:
				income.Interest = income.Interest.Add(r.Value)
			case models.SubTax:
				income.Taxes = income.Taxes.Add(r.Value)
			case models.SubDepreciation:
				income.Depreciation = income.Depreciation.Add(r.Value)
			}
		}
	}

	// Grand totals are always summed independently, never derived from the
	// accounting identity.
	assets.Total = assets.CurrentTotal.Add(assets.NonCurrentTotal)
	liabs.Total = liabs.CurrentTotal.Add(liabs.NonCurrentTotal)

	income.OperatingExpenses = totalExp.
		Sub(income.COGS).
		Sub(income.Interest).
		Sub(income.Taxes).
		Sub(income.Depreciation)
	income.GrossProfit = income.NetSales.Sub(income.COGS)
	income.OperatingIncome = income.GrossProfit.
		Sub(income.OperatingExpenses).
		Sub(income.Depreciation)
	income.NetIncome = income.OperatingIncome.
		Sub(income.Interest).
		Sub(income.Taxes)

	// Retained-earnings roll-forward: the year's net income tops up the
	// contributed equity instead of being carried as a persisted balance.
	equity.Total = equity.Contributed.Add(income.NetIncome)

	sheet := models.BalanceSheet{
		Assets:          assets,
		Liabilities:     liabs,
		Equity:          equity,
		TotalLiabEquity: liabs.Total.Add(equity.Total),
	}
	if diff := sheet.Assets.Total.Sub(sheet.TotalLiabEquity).Abs(); diff.GreaterThan(identityTolerance) {
		sheet.BalanceWarning = fmt.Sprintf(
			"year %d: assets total %s differs from liabilities+equity %s by %s",
			year, sheet.Assets.Total, sheet.TotalLiabEquity, diff)
	}

	return &models.Statement{
		Year:            year,
		BalanceSheet:    sheet,
		IncomeStatement: income,
	}
}
