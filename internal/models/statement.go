package models

import "github.com/shopspring/decimal"

// AccountGroup holds one side of the balance sheet split into current and
// non-current blocks. Total is always the independently summed grand total,
// never derived from the accounting identity.
type AccountGroup struct {
	Current         []ClassifiedRecord `json:"current"`
	NonCurrent      []ClassifiedRecord `json:"non_current"`
	CurrentTotal    decimal.Decimal    `json:"current_total"`
	NonCurrentTotal decimal.Decimal    `json:"non_current_total"`
	Total           decimal.Decimal    `json:"total"`
}

// EquitySection holds the contributed-equity accounts and the equity total.
// Total = contributed + the year's net income: retained earnings are
// recomputed from flows every year, never carried as a persisted balance.
type EquitySection struct {
	Accounts    []ClassifiedRecord `json:"accounts"`
	Contributed decimal.Decimal    `json:"contributed"`
	Total       decimal.Decimal    `json:"total"`
}

// BalanceSheet is the reconstructed balance sheet for one fiscal year.
type BalanceSheet struct {
	Assets          AccountGroup    `json:"assets"`
	Liabilities     AccountGroup    `json:"liabilities"`
	Equity          EquitySection   `json:"equity"`
	TotalLiabEquity decimal.Decimal `json:"total_liab_equity"`
	// BalanceWarning is set when assets and liabilities+equity disagree.
	// Data-quality signal, never fatal.
	BalanceWarning string `json:"balance_warning,omitempty"`
}

// IncomeStatement is the reconstructed income statement for one fiscal year.
type IncomeStatement struct {
	NetSales          decimal.Decimal    `json:"net_sales"`
	COGS              decimal.Decimal    `json:"cogs"`
	GrossProfit       decimal.Decimal    `json:"gross_profit"`
	OperatingExpenses decimal.Decimal    `json:"operating_expenses"`
	Depreciation      decimal.Decimal    `json:"depreciation"`
	OperatingIncome   decimal.Decimal    `json:"operating_income"`
	Interest          decimal.Decimal    `json:"interest"`
	Taxes             decimal.Decimal    `json:"taxes"`
	NetIncome         decimal.Decimal    `json:"net_income"`
	Revenues          []ClassifiedRecord `json:"revenues"`
	Expenses          []ClassifiedRecord `json:"expenses"`
}

// Statement bundles both reconstructed statements for one fiscal year.
type Statement struct {
	Year            int             `json:"year"`
	BalanceSheet    BalanceSheet    `json:"balance_sheet"`
	IncomeStatement IncomeStatement `json:"income_statement"`
}

// SubClassTotal sums the value of every record in the statement carrying the
// given subclass, across both balance-sheet sides and the income statement.
func (s *Statement) SubClassTotal(sub SubClass) decimal.Decimal {
	total := decimal.Zero
	lists := [][]ClassifiedRecord{
		s.BalanceSheet.Assets.Current,
		s.BalanceSheet.Assets.NonCurrent,
		s.BalanceSheet.Liabilities.Current,
		s.BalanceSheet.Liabilities.NonCurrent,
		s.BalanceSheet.Equity.Accounts,
		s.IncomeStatement.Revenues,
		s.IncomeStatement.Expenses,
	}
	for _, list := range lists {
		for _, r := range list {
			if r.SubClass == sub {
				total = total.Add(r.Value)
			}
		}
	}
	return total
}
