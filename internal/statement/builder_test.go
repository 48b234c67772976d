package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finanalyzer/internal/models"
)

func rec(id, name string, value int64, year int, accountType models.AccountType, sub models.SubClass) models.ClassifiedRecord {
	return models.ClassifiedRecord{
		LedgerRecord: models.LedgerRecord{
			ID:          id,
			AccountName: name,
			Value:       decimal.NewFromInt(value),
			Year:        year,
			Type:        accountType,
		},
		SubClass: sub,
	}
}

func balancedYear(year int) []models.ClassifiedRecord {
	return []models.ClassifiedRecord{
		rec("a1", "CAJA", 100, year, models.TypeAsset, models.SubCash),
		rec("a2", "CLIENTES", 200, year, models.TypeAsset, models.SubReceivables),
		rec("a3", "INVENTARIO", 100, year, models.TypeAsset, models.SubInventory),
		rec("a4", "MAQUINARIA", 500, year, models.TypeAsset, models.SubFixedAsset),
		rec("a5", "PATENTES", 100, year, models.TypeAsset, models.SubNonCurrentAsset),
		rec("l1", "PROVEEDORES", 200, year, models.TypeLiability, models.SubPayables),
		rec("l2", "HIPOTECA", 300, year, models.TypeLiability, models.SubNonCurrentLiability),
		rec("e1", "CAPITAL", 300, year, models.TypeEquity, models.SubEquity),
		rec("r1", "VENTAS", 1000, year, models.TypeRevenue, models.SubRevenue),
		rec("x1", "COSTO DE VENTAS", 600, year, models.TypeExpense, models.SubCOGS),
		rec("x2", "GASTOS ADMINISTRATIVOS", 100, year, models.TypeExpense, models.SubOperatingExpense),
		rec("x3", "INTERESES", 50, year, models.TypeExpense, models.SubInterest),
		rec("x4", "IMPUESTOS", 50, year, models.TypeExpense, models.SubTax),
	}
}

func TestBuildReconstructsBothStatements(t *testing.T) {
	statements := Build(balancedYear(2023))
	require.Len(t, statements, 1)
	stmt := statements[2023]
	require.NotNil(t, stmt)

	bs := stmt.BalanceSheet
	assert.Equal(t, "400", bs.Assets.CurrentTotal.String())
	assert.Equal(t, "600", bs.Assets.NonCurrentTotal.String())
	assert.Equal(t, "1000", bs.Assets.Total.String())
	assert.Equal(t, "200", bs.Liabilities.CurrentTotal.String())
	assert.Equal(t, "300", bs.Liabilities.NonCurrentTotal.String())
	assert.Equal(t, "500", bs.Liabilities.Total.String())

	is := stmt.IncomeStatement
	assert.Equal(t, "1000", is.NetSales.String())
	assert.Equal(t, "600", is.COGS.String())
	assert.Equal(t, "400", is.GrossProfit.String())
	assert.Equal(t, "100", is.OperatingExpenses.String())
	assert.Equal(t, "300", is.OperatingIncome.String())
	assert.Equal(t, "200", is.NetIncome.String())

	// Retained-earnings roll-forward: contributed 300 + net income 200.
	assert.Equal(t, "300", bs.Equity.Contributed.String())
	assert.Equal(t, "500", bs.Equity.Total.String())
	assert.Equal(t, "1000", bs.TotalLiabEquity.String())
	assert.Empty(t, bs.BalanceWarning)
}

func TestBuildAssetTotalEqualsSubtotalSum(t *testing.T) {
	statements := Build(balancedYear(2023))
	bs := statements[2023].BalanceSheet

	assert.True(t, bs.Assets.Total.Equal(bs.Assets.CurrentTotal.Add(bs.Assets.NonCurrentTotal)))
	assert.True(t, bs.Liabilities.Total.Equal(bs.Liabilities.CurrentTotal.Add(bs.Liabilities.NonCurrentTotal)))
}

func TestBuildGroupsByYear(t *testing.T) {
	records := append(balancedYear(2022), balancedYear(2023)...)
	statements := Build(records)

	require.Len(t, statements, 2)
	assert.Equal(t, []int{2022, 2023}, Years(statements))
	assert.Equal(t, 2022, statements[2022].Year)
	assert.Equal(t, 2023, statements[2023].Year)
}

func TestBuildFlagsUnbalancedIdentity(t *testing.T) {
	records := []models.ClassifiedRecord{
		rec("a1", "CAJA", 100, 2023, models.TypeAsset, models.SubCash),
		rec("e1", "CAPITAL", 40, 2023, models.TypeEquity, models.SubEquity),
	}
	statements := Build(records)

	warning := statements[2023].BalanceSheet.BalanceWarning
	require.NotEmpty(t, warning)
	assert.Contains(t, warning, "2023")
	assert.Contains(t, warning, "100")
}

func TestBuildDegenerateYearDoesNotFail(t *testing.T) {
	records := []models.ClassifiedRecord{
		rec("x1", "SUELDOS", 50, 2023, models.TypeExpense, models.SubOperatingExpense),
	}
	statements := Build(records)
	stmt := statements[2023]

	assert.True(t, stmt.BalanceSheet.Assets.Total.IsZero())
	assert.True(t, stmt.IncomeStatement.NetSales.IsZero())
	assert.Equal(t, "-50", stmt.IncomeStatement.NetIncome.String())
}

func TestSubClassTotalSumsAcrossSections(t *testing.T) {
	records := append(balancedYear(2023),
		rec("a9", "CAJA CHICA", 25, 2023, models.TypeAsset, models.SubCash))
	statements := Build(records)

	assert.Equal(t, "125", statements[2023].SubClassTotal(models.SubCash).String())
	assert.Equal(t, "600", statements[2023].SubClassTotal(models.SubCOGS).String())
	assert.True(t, statements[2023].SubClassTotal(models.SubDepreciation).IsZero())
}
