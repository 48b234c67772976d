// Package ratios computes the per-year liquidity, activity, leverage and
// profitability ratio snapshot from reconstructed statements. Every division
// is safe: a zero denominator yields zero, never an error or infinity.
package ratios

import (
	"github.com/shopspring/decimal"

	"finanalyzer/internal/models"
)

var (
	two         = decimal.NewFromInt(2)
	daysPerYear = decimal.NewFromInt(360)
)

// Snapshot computes all ratio groups for one year. previous may be nil; when
// present and non-zero it feeds the two-year rolling averages the activity
// ratios are based on.
func Snapshot(current *models.Statement, previous *models.Statement) models.RatioSnapshot {
	bs := current.BalanceSheet
	is := current.IncomeStatement

	currentAssets := bs.Assets.CurrentTotal
	currentLiabs := bs.Liabilities.CurrentTotal
	inventory := current.SubClassTotal(models.SubInventory)
	receivables := current.SubClassTotal(models.SubReceivables)
	payables := current.SubClassTotal(models.SubPayables)
	fixedAssets := current.SubClassTotal(models.SubFixedAsset)

	avgInventory := rollingAverage(inventory, previous, func(p *models.Statement) decimal.Decimal {
		return p.SubClassTotal(models.SubInventory)
	})
	avgReceivables := rollingAverage(receivables, previous, func(p *models.Statement) decimal.Decimal {
		return p.SubClassTotal(models.SubReceivables)
	})
	avgTotalAssets := rollingAverage(bs.Assets.Total, previous, func(p *models.Statement) decimal.Decimal {
		return p.BalanceSheet.Assets.Total
	})
	avgFixedAssets := rollingAverage(fixedAssets, previous, func(p *models.Statement) decimal.Decimal {
		return p.SubClassTotal(models.SubFixedAsset)
	})

	receivablesTurnover := models.SafeDiv(is.NetSales, avgReceivables)

	dupont := models.DuPontDecomposition{
		NetMargin:        models.SafeDivPct(is.NetIncome, is.NetSales),
		AssetTurnover:    models.SafeDiv(is.NetSales, bs.Assets.Total),
		EquityMultiplier: models.SafeDiv(bs.Assets.Total, bs.Equity.Total),
	}
	dupont.ROE = dupont.NetMargin.Mul(dupont.AssetTurnover).Mul(dupont.EquityMultiplier)

	return models.RatioSnapshot{
		Year: current.Year,
		Liquidity: models.LiquidityRatios{
			WorkingCapital:         currentAssets.Sub(currentLiabs),
			NetOperatingWorkingCap: receivables.Add(inventory).Sub(payables),
			CurrentRatio:           models.SafeDiv(currentAssets, currentLiabs),
			QuickRatio:             models.SafeDiv(currentAssets.Sub(inventory), currentLiabs),
		},
		Activity: models.ActivityRatios{
			InventoryTurnover:    models.SafeDiv(is.COGS, avgInventory),
			ReceivablesTurnover:  receivablesTurnover,
			DaysSalesOutstanding: models.SafeDiv(daysPerYear, receivablesTurnover),
			TotalAssetTurnover:   models.SafeDiv(is.NetSales, avgTotalAssets),
			FixedAssetTurnover:   models.SafeDiv(is.NetSales, avgFixedAssets),
		},
		Leverage: models.LeverageRatios{
			DebtRatio:        models.SafeDivPct(bs.Liabilities.Total, bs.Assets.Total),
			DebtToEquity:     models.SafeDiv(bs.Liabilities.Total, bs.Equity.Total),
			InterestCoverage: models.SafeDiv(is.OperatingIncome, is.Interest),
		},
		Profitability: models.ProfitabilityRatios{
			GrossMargin:     models.SafeDivPct(is.GrossProfit, is.NetSales),
			OperatingMargin: models.SafeDivPct(is.OperatingIncome, is.NetSales),
			NetMargin:       models.SafeDivPct(is.NetIncome, is.NetSales),
			ROA:             models.SafeDivPct(is.NetIncome, bs.Assets.Total),
			ROE:             models.SafeDivPct(is.NetIncome, bs.Equity.Total),
			DuPont:          dupont,
		},
	}
}

// rollingAverage returns (current+prior)/2 when a prior year exists with a
// non-zero base, else the current value. The fallback avoids turning a
// missing or empty prior year into a halved average.
func rollingAverage(current decimal.Decimal, previous *models.Statement, base func(*models.Statement) decimal.Decimal) decimal.Decimal {
	if previous == nil {
		return current
	}
	prior := base(previous)
	if prior.IsZero() {
		return current
	}
	return current.Add(prior).Div(two)
}
