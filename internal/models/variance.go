package models

import "github.com/shopspring/decimal"

// VerticalEntry expresses one record as a percentage of its year's base:
// total assets for asset rows, total liabilities+equity for liability and
// equity rows, net sales for revenue and expense rows.
type VerticalEntry struct {
	ClassifiedRecord
	Pct decimal.Decimal `json:"pct"`
}

// HorizontalEntry compares one account's summed value across two years.
// VarPct is zero when the base-year value is zero.
type HorizontalEntry struct {
	Period    string          `json:"period"`
	Account   string          `json:"account"`
	YearBase  int             `json:"year_base"`
	Year      int             `json:"year"`
	BaseValue decimal.Decimal `json:"base_value"`
	Value     decimal.Decimal `json:"value"`
	VarAbs    decimal.Decimal `json:"var_abs"`
	VarPct    decimal.Decimal `json:"var_pct"`
}
