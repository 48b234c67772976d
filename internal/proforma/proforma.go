// Package proforma projects a one-year-ahead income statement by applying the
// observed revenue growth rate while holding the latest cost-to-revenue
// ratios constant.
package proforma

import (
	"github.com/shopspring/decimal"

	"finanalyzer/internal/models"
)

var one = decimal.NewFromInt(1)

// Project builds the projection from the two most recent years. Returns nil
// when fewer than two years exist or the prior year's revenue is zero (no
// growth rate can be observed); an absent result, not an error.
func Project(statements map[int]*models.Statement, years []int) *models.ProformaProjection {
	if len(years) < 2 {
		return nil
	}
	last := statements[years[len(years)-1]]
	prior := statements[years[len(years)-2]]

	revenueLast := last.IncomeStatement.NetSales
	revenuePrior := prior.IncomeStatement.NetSales
	if revenuePrior.IsZero() {
		return nil
	}

	growth := revenueLast.Sub(revenuePrior).Div(revenuePrior)
	revenueProj := revenueLast.Mul(one.Add(growth))

	// Cost structure held constant at the last observed ratios.
	cogsProj := revenueProj.Mul(models.SafeDiv(last.IncomeStatement.COGS, revenueLast))
	expensesProj := revenueProj.Mul(models.SafeDiv(
		last.IncomeStatement.OperatingExpenses.
			Add(last.IncomeStatement.Depreciation).
			Add(last.IncomeStatement.Interest).
			Add(last.IncomeStatement.Taxes),
		revenueLast))

	return &models.ProformaProjection{
		YearBase:          last.Year,
		YearProj:          last.Year + 1,
		GrowthRate:        growth,
		Revenue:           revenueProj,
		COGS:              cogsProj,
		OperatingExpenses: expensesProj,
		OperatingIncome:   revenueProj.Sub(cogsProj).Sub(expensesProj),
	}
}
