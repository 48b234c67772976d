package narrative

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"finanalyzer/internal/models"
)

func snapshot(year int, roe, currentRatio, debtRatio float64) models.RatioSnapshot {
	return models.RatioSnapshot{
		Year: year,
		Liquidity: models.LiquidityRatios{
			CurrentRatio: decimal.NewFromFloat(currentRatio),
		},
		Leverage: models.LeverageRatios{
			DebtRatio: decimal.NewFromFloat(debtRatio),
		},
		Profitability: models.ProfitabilityRatios{
			ROE: decimal.NewFromFloat(roe),
		},
	}
}

func TestGenerateBands(t *testing.T) {
	tests := []struct {
		name string
		snap models.RatioSnapshot
		want []string
	}{
		{
			name: "strong across the board",
			snap: snapshot(2023, 25, 2.5, 30),
			want: []string{
				"Excellent return on equity",
				"High coverage",
				"Conservative capital structure",
			},
		},
		{
			name: "middle bands",
			snap: snapshot(2023, 15, 1.5, 50),
			want: []string{
				"Acceptable return",
				"Sufficient short-term payment capacity",
				"Moderate leverage",
			},
		},
		{
			name: "weak across the board",
			snap: snapshot(2023, 5, 0.8, 70),
			want: []string{
				"Weak return",
				"Liquidity risk",
				"Heavy reliance on debt",
			},
		},
		{
			// Floors belong to the band below the threshold, except that a
			// value above the top floor takes the top band.
			name: "exact thresholds",
			snap: snapshot(2023, 20, 1, 60),
			want: []string{
				"Acceptable return",
				"Sufficient short-term payment capacity",
				"Moderate leverage",
			},
		},
		{
			name: "negative values hit the lowest band",
			snap: snapshot(2023, -10, 0, 0),
			want: []string{
				"Weak return",
				"Liquidity risk",
				"Conservative capital structure",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate([]models.RatioSnapshot{tt.snap}, nil)
			for _, phrase := range tt.want {
				assert.Contains(t, got, phrase)
			}
		})
	}
}

func TestGenerateStructure(t *testing.T) {
	got := Generate([]models.RatioSnapshot{snapshot(2023, 25.5, 2.5, 30)}, nil)

	assert.True(t, strings.HasPrefix(got, "DIAGNOSIS 2023:"))
	assert.Contains(t, got, "1. PROFITABILITY (25.5%)")
	assert.Contains(t, got, "2. LIQUIDITY (2.50)")
	assert.Contains(t, got, "3. LEVERAGE (30.0%)")
	assert.NotContains(t, got, "PROJECTION")
}

func TestGenerateUsesLatestYear(t *testing.T) {
	ratios := []models.RatioSnapshot{
		snapshot(2022, 5, 0.5, 80),
		snapshot(2023, 25, 2.5, 30),
	}

	got := Generate(ratios, nil)

	assert.Contains(t, got, "DIAGNOSIS 2023:")
	assert.Contains(t, got, "Excellent return on equity")
	assert.NotContains(t, got, "Weak return")
}

func TestGenerateWithProjection(t *testing.T) {
	projection := &models.ProformaProjection{
		YearBase:   2023,
		YearProj:   2024,
		GrowthRate: decimal.NewFromFloat(0.2),
	}

	got := Generate([]models.RatioSnapshot{snapshot(2023, 15, 1.5, 50)}, projection)

	assert.Contains(t, got, "4. PROJECTION 2024")
	assert.Contains(t, got, "change by 20.0% based on observed growth")
}

func TestGenerateEmpty(t *testing.T) {
	assert.Equal(t, "No data available for analysis.", Generate(nil, nil))
	assert.Equal(t, "No data available for analysis.", Generate([]models.RatioSnapshot{}, nil))
}
