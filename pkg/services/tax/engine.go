package tax

import (
	"errors"
	"fmt"
	"math"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
)

// Failure taxonomy. Both are pre-computation rejections; a wrapped error
// carries the offending field.
var (
	ErrInvalidRegime  = errors.New("invalid regime")
	ErrNegativeAmount = errors.New("negative amount")
)

// cessRate is the flat health-and-education surcharge applied to base tax
// under both regimes.
const cessRate = 0.04

// Planner is the contract handlers and CLI commands consume.
type Planner interface {
	CalculateTax(income float64, deductions map[string]float64, regime domain.Regime) (domain.TaxResult, error)
	CompareRegimes(income float64, deductions map[string]float64) (domain.RegimeComparison, error)
	GetRecommendations(income float64, deductions map[string]float64) ([]domain.Recommendation, error)
}

// Engine computes tax liability against an immutable catalog. Every method
// is a pure function of its arguments; Engine itself carries no per-call
// state and is safe for concurrent use.
type Engine struct {
	catalog *Catalog
}

func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

func validateInputs(income float64, deductions map[string]float64) error {
	if income < 0 {
		return fmt.Errorf("%w: income %v", ErrNegativeAmount, income)
	}
	for section, amount := range deductions {
		if amount < 0 {
			return fmt.Errorf("%w: deduction %s is %v", ErrNegativeAmount, section, amount)
		}
	}
	return nil
}

// CalculateTax computes the liability for one regime. Deductions only apply
// under the old regime; the new regime trades them for lower nominal rates.
// Taxable income is floored at zero when deductions exceed income.
func (e *Engine) CalculateTax(
	income float64,
	deductions map[string]float64,
	regime domain.Regime,
) (domain.TaxResult, error) {
	table, ok := e.catalog.Regime(regime)
	if !ok {
		return domain.TaxResult{}, fmt.Errorf("%w: %q", ErrInvalidRegime, regime)
	}
	if err := validateInputs(income, deductions); err != nil {
		return domain.TaxResult{}, err
	}

	var totalDeductions float64
	for _, amount := range deductions {
		totalDeductions += amount
	}

	taxableIncome := income
	if table.AllowsDeductions {
		taxableIncome = math.Max(income-totalDeductions, 0)
	}

	var baseTax float64
	var breakup []domain.SlabContribution
	for _, slab := range table.Slabs {
		if taxableIncome <= slab.LowerBound {
			break
		}
		taxableAmount := math.Min(taxableIncome-slab.LowerBound, slab.UpperBound-slab.LowerBound)
		slabTax := taxableAmount * slab.Rate
		baseTax += slabTax
		breakup = append(breakup, domain.SlabContribution{
			Slab: slabLabel(slab),
			// %.10g keeps "30%" from becoming "30.000000000000004%".
			Rate: fmt.Sprintf("%.10g%%", slab.Rate*100),
			Tax:  slabTax,
		})
	}

	cess := baseTax * cessRate

	return domain.TaxResult{
		Regime:          regime,
		GrossIncome:     income,
		TotalDeductions: totalDeductions,
		TaxableIncome:   taxableIncome,
		Breakup:         breakup,
		BaseTax:         baseTax,
		Cess:            cess,
		TotalTax:        baseTax + cess,
	}, nil
}

func slabLabel(slab domain.SlabRule) string {
	if math.IsInf(slab.UpperBound, 1) {
		return fmt.Sprintf("%.0f+", slab.LowerBound+1)
	}
	return fmt.Sprintf("%.0f-%.0f", slab.LowerBound+1, slab.UpperBound)
}

// CompareRegimes runs both regimes on the same inputs and recommends the
// cheaper one. A tie goes to the old regime, which keeps deduction
// flexibility.
func (e *Engine) CompareRegimes(
	income float64,
	deductions map[string]float64,
) (domain.RegimeComparison, error) {
	oldResult, err := e.CalculateTax(income, deductions, domain.RegimeOld)
	if err != nil {
		return domain.RegimeComparison{}, err
	}
	newResult, err := e.CalculateTax(income, deductions, domain.RegimeNew)
	if err != nil {
		return domain.RegimeComparison{}, err
	}

	recommended := domain.RegimeOld
	if newResult.TotalTax < oldResult.TotalTax {
		recommended = domain.RegimeNew
	}

	return domain.RegimeComparison{
		Old:         oldResult,
		New:         newResult,
		Recommended: recommended,
		Savings:     math.Abs(oldResult.TotalTax - newResult.TotalTax),
	}, nil
}

// GetRecommendations reports remaining headroom per deduction section, in
// catalog order. Sections already at their cap are omitted; rule-based
// sections are always included with a zero remaining limit. Income is
// accepted for contract symmetry; no income-tiered eligibility rule exists
// yet.
func (e *Engine) GetRecommendations(
	income float64,
	deductions map[string]float64,
) ([]domain.Recommendation, error) {
	if err := validateInputs(income, deductions); err != nil {
		return nil, err
	}

	var recommendations []domain.Recommendation
	for _, rule := range e.catalog.Deductions() {
		current := deductions[rule.Section]
		if !rule.Cap.RuleBased && current >= rule.Cap.Amount {
			continue
		}

		var remaining float64
		if !rule.Cap.RuleBased {
			remaining = rule.Cap.Amount - current
		}
		recommendations = append(recommendations, domain.Recommendation{
			Section:              rule.Section,
			CurrentUtilization:   current,
			RemainingLimit:       remaining,
			RuleBased:            rule.Cap.RuleBased,
			SuggestedInstruments: rule.Instruments,
		})
	}

	return recommendations, nil
}
