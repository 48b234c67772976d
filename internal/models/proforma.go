package models

import "github.com/shopspring/decimal"

// ProformaProjection is a one-year-ahead projection built by holding the base
// year's cost-to-revenue ratios constant and applying the observed
// year-over-year revenue growth rate. GrowthRate is a fraction (0.20 = 20%).
type ProformaProjection struct {
	YearBase          int             `json:"year_base"`
	YearProj          int             `json:"year_proj"`
	GrowthRate        decimal.Decimal `json:"growth_rate"`
	Revenue           decimal.Decimal `json:"revenue"`
	COGS              decimal.Decimal `json:"cogs"`
	OperatingExpenses decimal.Decimal `json:"operating_expenses"`
	OperatingIncome   decimal.Decimal `json:"operating_income"`
}
