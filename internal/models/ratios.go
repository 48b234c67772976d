package models

import "github.com/shopspring/decimal"

// LiquidityRatios measures short-term payment capacity.
type LiquidityRatios struct {
	WorkingCapital          decimal.Decimal `json:"working_capital"`
	NetOperatingWorkingCap  decimal.Decimal `json:"net_operating_working_capital"`
	CurrentRatio            decimal.Decimal `json:"current_ratio"`
	QuickRatio              decimal.Decimal `json:"quick_ratio"`
}

// ActivityRatios measures how intensively assets are worked. Turnovers use a
// two-year rolling average of the balance-sheet base when a prior year exists.
type ActivityRatios struct {
	InventoryTurnover    decimal.Decimal `json:"inventory_turnover"`
	ReceivablesTurnover  decimal.Decimal `json:"receivables_turnover"`
	DaysSalesOutstanding decimal.Decimal `json:"days_sales_outstanding"`
	TotalAssetTurnover   decimal.Decimal `json:"total_asset_turnover"`
	FixedAssetTurnover   decimal.Decimal `json:"fixed_asset_turnover"`
}

// LeverageRatios measures reliance on debt financing.
type LeverageRatios struct {
	DebtRatio        decimal.Decimal `json:"debt_ratio"`
	DebtToEquity     decimal.Decimal `json:"debt_to_equity"`
	InterestCoverage decimal.Decimal `json:"interest_coverage"`
}

// DuPontDecomposition expresses ROE as margin x asset turnover x equity
// multiplier. ROE is the product of the three components and serves as a
// cross-check against ProfitabilityRatios.ROE.
type DuPontDecomposition struct {
	NetMargin        decimal.Decimal `json:"net_margin"`
	AssetTurnover    decimal.Decimal `json:"asset_turnover"`
	EquityMultiplier decimal.Decimal `json:"equity_multiplier"`
	ROE              decimal.Decimal `json:"roe"`
}

// ProfitabilityRatios measures margins and returns. Percentages.
type ProfitabilityRatios struct {
	GrossMargin     decimal.Decimal     `json:"gross_margin"`
	OperatingMargin decimal.Decimal     `json:"operating_margin"`
	NetMargin       decimal.Decimal     `json:"net_margin"`
	ROA             decimal.Decimal     `json:"roa"`
	ROE             decimal.Decimal     `json:"roe"`
	DuPont          DuPontDecomposition `json:"dupont"`
}

// RatioSnapshot groups all ratio figures for one fiscal year.
type RatioSnapshot struct {
	Year          int                 `json:"year"`
	Liquidity     LiquidityRatios     `json:"liquidity"`
	Activity      ActivityRatios      `json:"activity"`
	Leverage      LeverageRatios      `json:"leverage"`
	Profitability ProfitabilityRatios `json:"profitability"`
}
