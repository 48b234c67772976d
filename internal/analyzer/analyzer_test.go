package analyzer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finanalyzer/internal/logging"
	"finanalyzer/internal/models"
	"finanalyzer/internal/variance"
)

func ledger(id, name string, value int64, year int, accountType models.AccountType) models.LedgerRecord {
	return models.LedgerRecord{
		ID:          id,
		AccountName: name,
		Value:       decimal.NewFromInt(value),
		Year:        year,
		Type:        accountType,
	}
}

// twoYearLedger is the canonical two-year input: 2022 balances only, 2023
// with a full income statement (net income 200) and 20% revenue growth.
func twoYearLedger() []models.LedgerRecord {
	return []models.LedgerRecord{
		ledger("p1", "CAJA", 100, 2022, models.TypeAsset),
		ledger("p2", "CLIENTES", 150, 2022, models.TypeAsset),
		ledger("p3", "INVENTARIO", 100, 2022, models.TypeAsset),
		ledger("p4", "MAQUINARIA", 500, 2022, models.TypeAsset),
		ledger("p5", "PROVEEDORES", 200, 2022, models.TypeLiability),
		ledger("p6", "PRESTAMO BANCARIO", 300, 2022, models.TypeLiability),
		ledger("p7", "CAPITAL", 300, 2022, models.TypeEquity),
		ledger("p8", "VENTAS", 1000, 2022, models.TypeRevenue),

		ledger("c1", "CAJA", 250, 2023, models.TypeAsset),
		ledger("c2", "CLIENTES", 200, 2023, models.TypeAsset),
		ledger("c3", "INVENTARIO", 100, 2023, models.TypeAsset),
		ledger("c4", "MAQUINARIA", 600, 2023, models.TypeAsset),
		ledger("c5", "PROVEEDORES", 200, 2023, models.TypeLiability),
		ledger("c6", "PRESTAMO BANCARIO", 400, 2023, models.TypeLiability),
		ledger("c7", "CAPITAL", 300, 2023, models.TypeEquity),
		ledger("c8", "VENTAS", 1200, 2023, models.TypeRevenue),
		ledger("c9", "COSTO DE VENTAS", 600, 2023, models.TypeExpense),
		ledger("c10", "GASTOS GENERALES", 300, 2023, models.TypeExpense),
		ledger("c11", "INTERESES", 50, 2023, models.TypeExpense),
		ledger("c12", "IMPUESTOS", 50, 2023, models.TypeExpense),
	}
}

func newService() *Service {
	return New(nil, &logging.MockLogger{})
}

func TestAnalyzeTwoYearEnvelope(t *testing.T) {
	report, err := newService().Analyze(twoYearLedger(), DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, report)

	require.Len(t, report.Ratios, 2)
	assert.Equal(t, 2022, report.Ratios[0].Year)
	assert.Equal(t, 2023, report.Ratios[1].Year)

	require.Len(t, report.CashFlows, 1)
	assert.Equal(t, 2022, report.CashFlows[0].YearFrom)
	assert.Equal(t, 2023, report.CashFlows[0].Year)

	require.Len(t, report.Statements, 2)
	assert.NotEmpty(t, report.Vertical)
	assert.NotEmpty(t, report.Horizontal)
	require.NotNil(t, report.Proforma)
	assert.Contains(t, report.Conclusion, "DIAGNOSIS 2023:")
	assert.Empty(t, report.Message)
}

func TestAnalyzeStatementReconstruction(t *testing.T) {
	report, err := newService().Analyze(twoYearLedger(), DefaultOptions())
	require.NoError(t, err)

	stmt := report.Statements[2023]
	require.NotNil(t, stmt)

	assert.Equal(t, "1150", stmt.BalanceSheet.Assets.Total.String())
	assert.Equal(t, "600", stmt.BalanceSheet.Liabilities.Total.String())
	assert.Equal(t, "200", stmt.IncomeStatement.NetIncome.String())
	// Equity rolls net income forward onto contributed capital.
	assert.Equal(t, "500", stmt.BalanceSheet.Equity.Total.String())
}

func TestAnalyzeProjectionGrowth(t *testing.T) {
	report, err := newService().Analyze(twoYearLedger(), DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, report.Proforma)

	assert.Equal(t, "0.2", report.Proforma.GrowthRate.String())
	assert.Equal(t, "1440", report.Proforma.Revenue.String())
	assert.Equal(t, 2024, report.Proforma.YearProj)
}

func TestAnalyzeIdempotent(t *testing.T) {
	svc := newService()
	input := twoYearLedger()

	first, err := svc.Analyze(input, DefaultOptions())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := svc.Analyze(twoYearLedger(), DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAnalyzeDoesNotMutateInput(t *testing.T) {
	input := []models.LedgerRecord{
		ledger("1", "  caja chica  ", 100, 2023, models.TypeAsset),
	}

	_, err := newService().Analyze(input, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "  caja chica  ", input[0].AccountName)
}

func TestAnalyzeSkipsAggregateRows(t *testing.T) {
	input := append(twoYearLedger(),
		ledger("t1", "TOTAL ACTIVOS", 1150, 2023, models.TypeAsset),
	)

	report, err := newService().Analyze(input, DefaultOptions())
	require.NoError(t, err)

	// The pre-aggregated line must not double-count total assets.
	assert.Equal(t, "1150", report.Statements[2023].BalanceSheet.Assets.Total.String())
	for _, entry := range report.Vertical {
		assert.NotEqual(t, "TOTAL ACTIVOS", entry.AccountName)
	}
}

func TestAnalyzeKeepsAggregateRowsWhenDisabled(t *testing.T) {
	input := append(twoYearLedger(),
		ledger("t1", "TOTAL ACTIVOS", 1150, 2023, models.TypeAsset),
	)
	opts := DefaultOptions()
	opts.SkipAggregateRows = false

	report, err := newService().Analyze(input, opts)
	require.NoError(t, err)

	assert.Equal(t, "2300", report.Statements[2023].BalanceSheet.Assets.Total.String())
}

func TestAnalyzeHorizontalStrategyOverride(t *testing.T) {
	opts := DefaultOptions()
	opts.HorizontalStrategy = variance.StrategyFixedBase

	report, err := newService().Analyze(twoYearLedger(), opts)
	require.NoError(t, err)

	for _, entry := range report.Horizontal {
		assert.Equal(t, 2022, entry.YearBase)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	report, err := newService().Analyze(nil, DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, "no data", report.Message)
	assert.Empty(t, report.Ratios)
	assert.Empty(t, report.Statements)
}

func TestAnalyzeOnlyAggregatesIsEmpty(t *testing.T) {
	input := []models.LedgerRecord{
		ledger("1", "TOTAL ACTIVOS", 1000, 2023, models.TypeAsset),
		ledger("2", "SUBTOTAL PASIVOS", 500, 2023, models.TypeLiability),
	}

	report, err := newService().Analyze(input, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "no data", report.Message)
}

func TestAnalyzeBalanceWarning(t *testing.T) {
	input := []models.LedgerRecord{
		ledger("1", "CAJA", 1000, 2023, models.TypeAsset),
		ledger("2", "CAPITAL", 400, 2023, models.TypeEquity),
	}

	report, err := newService().Analyze(input, DefaultOptions())
	require.NoError(t, err)

	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0], "2023")
}

func TestAnalyzeBalancedYearHasNoWarnings(t *testing.T) {
	input := []models.LedgerRecord{
		ledger("1", "CAJA", 1000, 2023, models.TypeAsset),
		ledger("2", "PROVEEDORES", 500, 2023, models.TypeLiability),
		ledger("3", "CAPITAL", 500, 2023, models.TypeEquity),
	}

	report, err := newService().Analyze(input, DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, report.Warnings)
}
