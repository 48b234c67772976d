// Package cashflow reconciles cash movement between two consecutive years of
// reconstructed statements, under both the indirect and the direct method.
// Both are estimates from the same coarse subclass deltas, not sub-ledger
// figures; when non-modeled accruals exist, the two methods diverge and the
// divergence is reported as-is.
package cashflow

import (
	"github.com/shopspring/decimal"

	"finanalyzer/internal/models"
)

// Reconcile builds the cash-flow statement for the year pair
// (previous.Year, current.Year). Returns nil when previous is nil: the first
// year of a dataset has nothing to reconcile against, which is an absent
// result, not an error.
func Reconcile(current, previous *models.Statement) *models.CashFlowStatement {
	if current == nil || previous == nil {
		return nil
	}

	is := current.IncomeStatement

	deltaReceivables := delta(current, previous, models.SubReceivables)
	deltaInventory := delta(current, previous, models.SubInventory)
	deltaPayables := delta(current, previous, models.SubPayables)

	indirect := models.IndirectCashFlow{
		NetIncome:         is.NetIncome,
		Depreciation:      is.Depreciation,
		ReceivablesChange: deltaReceivables,
		InventoryChange:   deltaInventory,
		PayablesChange:    deltaPayables,
	}
	indirect.OperatingFlow = is.NetIncome.
		Add(is.Depreciation).
		Sub(deltaReceivables).
		Sub(deltaInventory).
		Add(deltaPayables)

	// Purchases of non-current assets consume cash. This approximates net
	// capital expenditure and ignores disposals; a documented limitation of
	// working from year-end balances.
	indirect.InvestingFlow = current.BalanceSheet.Assets.NonCurrentTotal.
		Sub(previous.BalanceSheet.Assets.NonCurrentTotal).
		Neg()

	// Contributed equity only: retained earnings are already inside net income.
	indirect.FinancingFlow = current.BalanceSheet.Liabilities.NonCurrentTotal.
		Sub(previous.BalanceSheet.Liabilities.NonCurrentTotal).
		Add(current.BalanceSheet.Equity.Contributed.
			Sub(previous.BalanceSheet.Equity.Contributed))

	indirect.NetFlow = indirect.OperatingFlow.
		Add(indirect.InvestingFlow).
		Add(indirect.FinancingFlow)

	direct := models.DirectCashFlow{
		CustomerReceipts:  is.NetSales.Sub(deltaReceivables),
		SupplierPayments:  is.COGS.Add(deltaInventory).Sub(deltaPayables),
		OperatingPayments: is.OperatingExpenses,
		InterestPaid:      is.Interest,
		TaxesPaid:         is.Taxes,
	}
	direct.NetFlow = direct.CustomerReceipts.
		Sub(direct.SupplierPayments).
		Sub(direct.OperatingPayments).
		Sub(direct.InterestPaid).
		Sub(direct.TaxesPaid)

	openingCash := previous.SubClassTotal(models.SubCash)

	return &models.CashFlowStatement{
		YearFrom:           previous.Year,
		Year:               current.Year,
		Indirect:           indirect,
		Direct:             direct,
		MethodGap:          indirect.OperatingFlow.Sub(direct.NetFlow),
		OpeningCash:        openingCash,
		ImpliedClosingCash: openingCash.Add(indirect.NetFlow),
		ActualClosingCash:  current.SubClassTotal(models.SubCash),
	}
}

// delta returns current minus prior for the subclass total.
func delta(current, previous *models.Statement, sub models.SubClass) decimal.Decimal {
	return current.SubClassTotal(sub).Sub(previous.SubClassTotal(sub))
}
