package classifier

import "finanalyzer/internal/models"

// DefaultRules returns the built-in classification table. The vocabulary
// covers Spanish and English ledger terms since the account names arrive as
// free text from either locale. Order is significant within a type: more
// specific vocabularies sit above the generic current/non-current buckets.
func DefaultRules() []Rule {
	return []Rule{
		// Assets
		{Type: models.TypeAsset, SubClass: models.SubCash,
			Keywords: []string{"CAJA", "BANCO", "EFECTIVO", "CASH", "BANK"}},
		{Type: models.TypeAsset, SubClass: models.SubReceivables,
			Keywords: []string{"CLIENTE", "COBRAR", "DEUDOR", "RECEIVABLE", "DEBTOR"}},
		{Type: models.TypeAsset, SubClass: models.SubInventory,
			Keywords: []string{"INVENTARIO", "ALMACEN", "EXISTENCIA", "INVENTORY", "STOCK"}},
		{Type: models.TypeAsset, SubClass: models.SubFixedAsset,
			Keywords: []string{"FIJO", "MAQUINARIA", "EDIFICIO", "TERRENO", "VEHICULO",
				"FIXED", "MACHINERY", "BUILDING", "EQUIPMENT", "LAND", "PLANT", "VEHICLE"}},
		{Type: models.TypeAsset, SubClass: models.SubCurrentAsset,
			Keywords: []string{"CORRIENTE", "CIRCULANTE", "CURRENT"}},

		// Liabilities
		{Type: models.TypeLiability, SubClass: models.SubPayables,
			Keywords: []string{"PROVEEDOR", "PAGAR", "ACREEDOR", "PAYABLE", "SUPPLIER", "CREDITOR"}},
		{Type: models.TypeLiability, SubClass: models.SubCurrentLiability,
			Keywords: []string{"CORRIENTE", "CORTO", "CURRENT", "SHORT"}},

		// Expenses
		{Type: models.TypeExpense, SubClass: models.SubCOGS,
			Keywords: []string{"COSTO", "COGS", "COST OF"}},
		{Type: models.TypeExpense, SubClass: models.SubInterest,
			Keywords: []string{"INTERES", "FINANCIERO", "INTEREST", "FINANCE"}},
		{Type: models.TypeExpense, SubClass: models.SubTax,
			Keywords: []string{"IMPUESTO", "TRIBUT", "TAX"}},
		{Type: models.TypeExpense, SubClass: models.SubDepreciation,
			Keywords: []string{"DEPRECIACION", "AMORTIZACION", "DEPRECIATION", "AMORTIZATION"}},
	}
}
