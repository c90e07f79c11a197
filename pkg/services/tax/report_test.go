package tax

import (
	"testing"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTaxReport_Sections(t *testing.T) {
	engine := newTestEngine(t)
	result, err := engine.CalculateTax(600000, map[string]float64{"80C": 150000, "80D": 25000}, domain.RegimeOld)
	require.NoError(t, err)
	recs, err := engine.GetRecommendations(600000, map[string]float64{"80C": 150000, "80D": 25000})
	require.NoError(t, err)

	report := BuildTaxReport(result, recs)

	assert.Equal(t, "Tax Computation (old regime)", report.Title)
	assert.Equal(t, "INR", report.Currency)
	assert.InDelta(t, 9100.0, report.TotalAmount, 1e-9)

	require.Len(t, report.Sections, 3)
	assert.Equal(t, "Tax Calculation (old regime)", report.Sections[0].Title)
	assert.Equal(t, "Tax Breakup", report.Sections[1].Title)
	assert.Equal(t, "Recommendations", report.Sections[2].Title)

	require.Len(t, report.Sections[1].Details, 2)
	assert.Equal(t, "250001-500000", report.Sections[1].Details[1].Name)
	assert.Equal(t, "taxed at 5%", report.Sections[1].Details[1].Description)
}

func TestBuildComparisonReport_SummaryFirst(t *testing.T) {
	engine := newTestEngine(t)
	cmp, err := engine.CompareRegimes(900000, nil)
	require.NoError(t, err)

	report := BuildComparisonReport(cmp, nil)

	require.NotEmpty(t, report.Sections)
	assert.Equal(t, "Summary", report.Sections[0].Title)
	assert.Equal(t, "new", report.Sections[0].Summary["Recommended Regime"])
	assert.Equal(t, cmp.New.TotalTax, report.TotalAmount)
}

func TestBuildTaxReport_RuleBasedRecommendationSentinel(t *testing.T) {
	report := BuildTaxReport(domain.TaxResult{Regime: domain.RegimeOld}, []domain.Recommendation{
		{Section: "HRA", RuleBased: true, SuggestedInstruments: []string{"House Rent"}},
	})

	recSection := report.Sections[2]
	require.Len(t, recSection.Details, 1)
	assert.Equal(t, "rule-based", recSection.Details[0].Value)
	assert.Empty(t, recSection.Details[0].Unit)
}
