package models

// AnalysisReport is the response envelope for one analysis call. Ratios and
// cash flows are ordered by year ascending; vertical carries one entry per
// input record. The flujo_efectivo key is kept for compatibility with the
// existing API consumers.
type AnalysisReport struct {
	Ratios     []RatioSnapshot     `json:"ratios"`
	CashFlows  []CashFlowStatement `json:"flujo_efectivo"`
	Vertical   []VerticalEntry     `json:"vertical"`
	Horizontal []HorizontalEntry   `json:"horizontal"`
	Statements map[int]*Statement  `json:"financial_statements"`
	Proforma   *ProformaProjection `json:"proforma"`
	Conclusion string              `json:"conclusion"`
	Warnings   []string            `json:"warnings,omitempty"`
	Message    string              `json:"message,omitempty"`
}

// EmptyReport is the minimal result returned for an empty record set.
func EmptyReport(message string) *AnalysisReport {
	return &AnalysisReport{
		Ratios:     []RatioSnapshot{},
		CashFlows:  []CashFlowStatement{},
		Vertical:   []VerticalEntry{},
		Horizontal: []HorizontalEntry{},
		Statements: map[int]*Statement{},
		Message:    message,
	}
}
