// Package narrative produces the short rule-based diagnosis appended to every
// analysis. Template selection is table-driven: each section reads one ratio
// from the latest year and picks the first threshold band the value clears,
// so thresholds can be tuned without restructuring control flow.
package narrative

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"finanalyzer/internal/models"
)

// band is one threshold -> message row. Bands are ordered from the highest
// floor down; the first band whose floor the value reaches wins.
type band struct {
	floor   decimal.Decimal
	message string
}

// section reads one ratio from a snapshot and formats its diagnosis line.
type section struct {
	title  string
	value  func(models.RatioSnapshot) decimal.Decimal
	places int32
	suffix string
	bands  []band
}

var sections = []section{
	{
		title:  "PROFITABILITY",
		value:  func(r models.RatioSnapshot) decimal.Decimal { return r.Profitability.ROE },
		places: 1,
		suffix: "%",
		bands: []band{
			{decimal.NewFromInt(20), "Excellent return on equity. Maintain the current strategy."},
			{decimal.NewFromInt(10), "Acceptable return. Room to improve margins."},
			{decimal.New(-1, 18), "Weak return. Review margin and asset turnover."},
		},
	},
	{
		title:  "LIQUIDITY",
		value:  func(r models.RatioSnapshot) decimal.Decimal { return r.Liquidity.CurrentRatio },
		places: 2,
		bands: []band{
			{decimal.NewFromInt(2), "High coverage. Possible idle inventory or excess liquidity."},
			{decimal.NewFromInt(1), "Sufficient short-term payment capacity."},
			{decimal.New(-1, 18), "Liquidity risk. Current liabilities exceed current assets."},
		},
	},
	{
		title:  "LEVERAGE",
		value:  func(r models.RatioSnapshot) decimal.Decimal { return r.Leverage.DebtRatio },
		places: 1,
		suffix: "%",
		bands: []band{
			{decimal.NewFromInt(60), "Heavy reliance on debt financing. Watch interest coverage."},
			{decimal.NewFromInt(40), "Moderate leverage."},
			{decimal.New(-1, 18), "Conservative capital structure."},
		},
	},
}

// Generate builds the diagnosis for the latest year plus, when a projection
// exists, the expected revenue growth line. An empty ratio list yields the
// minimal no-data sentence.
func Generate(ratios []models.RatioSnapshot, projection *models.ProformaProjection) string {
	if len(ratios) == 0 {
		return "No data available for analysis."
	}
	latest := ratios[len(ratios)-1]

	var b strings.Builder
	fmt.Fprintf(&b, "DIAGNOSIS %d:\n", latest.Year)
	for i, s := range sections {
		value := s.value(latest)
		fmt.Fprintf(&b, "\n%d. %s (%s%s)\n", i+1, s.title, value.StringFixed(s.places), s.suffix)
		b.WriteString(pick(s.bands, value))
		b.WriteString("\n")
	}

	if projection != nil {
		growthPct := projection.GrowthRate.Mul(decimal.NewFromInt(100))
		fmt.Fprintf(&b, "\n%d. PROJECTION %d\n", len(sections)+1, projection.YearProj)
		fmt.Fprintf(&b, "Revenue expected to change by %s%% based on observed growth.",
			growthPct.StringFixed(1))
	}

	return b.String()
}

// pick returns the message of the first band the value clears. The top band
// is exclusive (ROE of exactly 20 is "10-20", not ">20"), lower bands are
// inclusive of their floor. The last band's floor is effectively negative
// infinity, so pick always returns a message.
func pick(bands []band, value decimal.Decimal) string {
	for i, band := range bands {
		if i == 0 && value.GreaterThan(band.floor) {
			return band.message
		}
		if i > 0 && value.GreaterThanOrEqual(band.floor) {
			return band.message
		}
	}
	return bands[len(bands)-1].message
}
