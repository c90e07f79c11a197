package tax

import (
	"fmt"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
)

const currency = "INR"

// BuildTaxReport turns a single-regime result plus recommendations into a
// renderable report: a calculation section, a per-slab breakup section and
// a savings-opportunity section.
func BuildTaxReport(result domain.TaxResult, recommendations []domain.Recommendation) *domain.Report {
	return &domain.Report{
		Title:       fmt.Sprintf("Tax Computation (%s regime)", result.Regime),
		TotalAmount: result.TotalTax,
		Currency:    currency,
		Sections: []domain.ReportSection{
			calculationSection(fmt.Sprintf("Tax Calculation (%s regime)", result.Regime), result),
			breakupSection(result),
			RecommendationsSection(recommendations),
		},
	}
}

// BuildComparisonReport renders both regimes side by side with the
// recommendation summary on top.
func BuildComparisonReport(cmp domain.RegimeComparison, recommendations []domain.Recommendation) *domain.Report {
	recommendedTotal := cmp.Old.TotalTax
	if cmp.Recommended == domain.RegimeNew {
		recommendedTotal = cmp.New.TotalTax
	}

	return &domain.Report{
		Title:       "Tax Regime Comparison",
		TotalAmount: recommendedTotal,
		Currency:    currency,
		Sections: []domain.ReportSection{
			{
				Title: "Summary",
				Summary: map[string]interface{}{
					"Recommended Regime": string(cmp.Recommended),
					"Savings":            fmt.Sprintf("%s %.2f", currency, cmp.Savings),
				},
			},
			calculationSection("Old Regime", cmp.Old),
			calculationSection("New Regime", cmp.New),
			RecommendationsSection(recommendations),
		},
	}
}

func calculationSection(title string, result domain.TaxResult) domain.ReportSection {
	return domain.ReportSection{
		Title: title,
		Details: []domain.ReportDetail{
			{Name: "Gross Income", Value: result.GrossIncome, Unit: currency},
			{Name: "Total Deductions", Value: result.TotalDeductions, Unit: currency},
			{Name: "Taxable Income", Value: result.TaxableIncome, Unit: currency},
			{Name: "Base Tax", Value: result.BaseTax, Unit: currency},
			{Name: "Cess", Value: result.Cess, Unit: currency, Description: "4% health and education cess"},
			{Name: "Total Tax", Value: result.TotalTax, Unit: currency},
		},
	}
}

func breakupSection(result domain.TaxResult) domain.ReportSection {
	details := make([]domain.ReportDetail, 0, len(result.Breakup))
	for _, c := range result.Breakup {
		details = append(details, domain.ReportDetail{
			Name:        c.Slab,
			Value:       c.Tax,
			Unit:        currency,
			Description: fmt.Sprintf("taxed at %s", c.Rate),
		})
	}
	return domain.ReportSection{Title: "Tax Breakup", Details: details}
}

// RecommendationsSection renders recommendations as a report section.
func RecommendationsSection(recommendations []domain.Recommendation) domain.ReportSection {
	details := make([]domain.ReportDetail, 0, len(recommendations))
	for _, r := range recommendations {
		detail := domain.ReportDetail{
			Name:        r.Section,
			Value:       r.RemainingLimit,
			Unit:        currency,
			Description: fmt.Sprintf("invest via %v", r.SuggestedInstruments),
		}
		if r.RuleBased {
			detail.Value = "rule-based"
			detail.Unit = ""
		}
		details = append(details, detail)
	}
	return domain.ReportSection{Title: "Recommendations", Details: details}
}
