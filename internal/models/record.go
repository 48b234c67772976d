// Package models defines the data types shared by the analytical packages:
// ledger records, classified records, reconstructed statements, ratio
// snapshots, cash-flow statements, variance entries and the analysis report
// envelope. Everything is constructed fresh per analysis call and treated as
// read-only by downstream consumers.
package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountType is the top-level type of a ledger record.
type AccountType string

const (
	TypeAsset     AccountType = "asset"
	TypeLiability AccountType = "liability"
	TypeEquity    AccountType = "equity"
	TypeRevenue   AccountType = "revenue"
	TypeExpense   AccountType = "expense"
)

// ParseAccountType validates and normalizes a raw account type string.
func ParseAccountType(raw string) (AccountType, error) {
	switch AccountType(raw) {
	case TypeAsset, TypeLiability, TypeEquity, TypeRevenue, TypeExpense:
		return AccountType(raw), nil
	}
	return "", fmt.Errorf("unknown account type: %q", raw)
}

// SubClass is the refinement of an AccountType assigned by the classifier.
// It drives statement placement and ratio formulas.
type SubClass string

const (
	SubCash                SubClass = "cash"
	SubReceivables         SubClass = "receivables"
	SubInventory           SubClass = "inventory"
	SubCurrentAsset        SubClass = "current_asset"
	SubFixedAsset          SubClass = "fixed_asset"
	SubNonCurrentAsset     SubClass = "non_current_asset"
	SubPayables            SubClass = "payables"
	SubCurrentLiability    SubClass = "current_liability"
	SubNonCurrentLiability SubClass = "non_current_liability"
	SubCOGS                SubClass = "cogs"
	SubInterest            SubClass = "interest"
	SubTax                 SubClass = "tax"
	SubDepreciation        SubClass = "depreciation"
	SubOperatingExpense    SubClass = "operating_expense"
	SubEquity              SubClass = "equity"
	SubRevenue             SubClass = "revenue"
)

// IsCurrentAsset reports whether the subclass sits in the current block of
// the balance sheet's asset side.
func (s SubClass) IsCurrentAsset() bool {
	switch s {
	case SubCash, SubReceivables, SubInventory, SubCurrentAsset:
		return true
	}
	return false
}

// IsCurrentLiability reports whether the subclass sits in the current block
// of the balance sheet's liability side.
func (s SubClass) IsCurrentLiability() bool {
	switch s {
	case SubPayables, SubCurrentLiability:
		return true
	}
	return false
}

// LedgerRecord is one labeled ledger entry as supplied by the caller.
// Immutable once handed to the engine.
type LedgerRecord struct {
	ID          string          `json:"id"`
	AccountName string          `json:"accountName"`
	Value       decimal.Decimal `json:"value"`
	Year        int             `json:"year"`
	Type        AccountType     `json:"type"`
}

// ClassifiedRecord is a LedgerRecord plus its derived subclass. Derived once
// by the classifier and never mutated afterward.
type ClassifiedRecord struct {
	LedgerRecord
	SubClass SubClass `json:"sub_class"`
}
