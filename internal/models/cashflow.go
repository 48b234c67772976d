package models

import "github.com/shopspring/decimal"

// IndirectCashFlow reconciles cash generation starting from net income and
// adjusting for non-cash items and working-capital movements.
type IndirectCashFlow struct {
	NetIncome         decimal.Decimal `json:"net_income"`
	Depreciation      decimal.Decimal `json:"depreciation"`
	ReceivablesChange decimal.Decimal `json:"receivables_change"`
	InventoryChange   decimal.Decimal `json:"inventory_change"`
	PayablesChange    decimal.Decimal `json:"payables_change"`
	OperatingFlow     decimal.Decimal `json:"operating_flow"`
	InvestingFlow     decimal.Decimal `json:"investing_flow"`
	FinancingFlow     decimal.Decimal `json:"financing_flow"`
	NetFlow           decimal.Decimal `json:"net_flow"`
}

// DirectCashFlow estimates cash received and paid per major operating
// category. An estimate from the same coarse deltas as the indirect method,
// not a sub-ledger figure; operating expenses, interest and taxes are assumed
// paid in cash in-period.
type DirectCashFlow struct {
	CustomerReceipts  decimal.Decimal `json:"customer_receipts"`
	SupplierPayments  decimal.Decimal `json:"supplier_payments"`
	OperatingPayments decimal.Decimal `json:"operating_payments"`
	InterestPaid      decimal.Decimal `json:"interest_paid"`
	TaxesPaid         decimal.Decimal `json:"taxes_paid"`
	NetFlow           decimal.Decimal `json:"net_flow"`
}

// CashFlowStatement reconciles cash movement between two consecutive years.
// The two methods are both estimates and are not forced to agree: MethodGap
// carries the divergence instead of hiding it.
type CashFlowStatement struct {
	YearFrom int              `json:"year_from"`
	Year     int              `json:"year"`
	Indirect IndirectCashFlow `json:"indirect"`
	Direct   DirectCashFlow   `json:"direct"`
	// MethodGap = indirect operating flow - direct net flow; both estimate
	// operating cash generation.
	MethodGap decimal.Decimal `json:"method_gap"`
	// Cash cross-check: opening + indirect net flow vs the cash actually on
	// the current year's balance sheet.
	OpeningCash        decimal.Decimal `json:"opening_cash"`
	ImpliedClosingCash decimal.Decimal `json:"implied_closing_cash"`
	ActualClosingCash  decimal.Decimal `json:"actual_closing_cash"`
}
