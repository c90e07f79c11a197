package adapters

import (
	"github.com/fin-tools/tax-atlas/pkg/models/api"
	"github.com/fin-tools/tax-atlas/pkg/models/domain"
)

func MapSlabContributionDomainToApi(c domain.SlabContribution) api.SlabContribution {
	return api.SlabContribution{
		Slab: c.Slab,
		Rate: c.Rate,
		Tax:  c.Tax,
	}
}

func MapTaxResultDomainToApi(r domain.TaxResult) api.TaxResult {
	breakup := make([]api.SlabContribution, 0, len(r.Breakup))
	for _, c := range r.Breakup {
		breakup = append(breakup, MapSlabContributionDomainToApi(c))
	}
	return api.TaxResult{
		Regime:          string(r.Regime),
		GrossIncome:     r.GrossIncome,
		TotalDeductions: r.TotalDeductions,
		TaxableIncome:   r.TaxableIncome,
		TaxBreakup:      breakup,
		BaseTax:         r.BaseTax,
		Cess:            r.Cess,
		TotalTax:        r.TotalTax,
	}
}

func MapRegimeComparisonDomainToApi(c domain.RegimeComparison) api.RegimeComparison {
	return api.RegimeComparison{
		OldRegime:         MapTaxResultDomainToApi(c.Old),
		NewRegime:         MapTaxResultDomainToApi(c.New),
		RecommendedRegime: string(c.Recommended),
		Savings:           c.Savings,
	}
}

func MapRecommendationDomainToApi(r domain.Recommendation) api.Recommendation {
	return api.Recommendation{
		Section:              r.Section,
		CurrentUtilization:   r.CurrentUtilization,
		RemainingLimit:       r.RemainingLimit,
		RuleBased:            r.RuleBased,
		SuggestedInstruments: r.SuggestedInstruments,
	}
}

func MapRecommendationsDomainToApi(recs []domain.Recommendation) []api.Recommendation {
	response := make([]api.Recommendation, 0, len(recs))
	for _, r := range recs {
		response = append(response, MapRecommendationDomainToApi(r))
	}
	return response
}
