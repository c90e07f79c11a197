package tax

import (
	"fmt"
	"math"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
)

// Catalog holds the slab tables and the deduction-section rules. It is
// assembled once at startup and treated as read-only from then on.
type Catalog struct {
	regimes    map[domain.Regime]domain.RegimeTable
	deductions []domain.DeductionRule
}

func NewCatalog(tables []domain.RegimeTable, deductions []domain.DeductionRule) (*Catalog, error) {
	regimes := make(map[domain.Regime]domain.RegimeTable, len(tables))
	for _, table := range tables {
		if !table.Name.Valid() {
			return nil, fmt.Errorf("unknown regime %q", table.Name)
		}
		if err := validateSlabs(table.Slabs); err != nil {
			return nil, fmt.Errorf("regime %q: %w", table.Name, err)
		}
		regimes[table.Name] = table
	}

	for _, r := range []domain.Regime{domain.RegimeOld, domain.RegimeNew} {
		if _, ok := regimes[r]; !ok {
			return nil, fmt.Errorf("missing slab table for regime %q", r)
		}
	}

	seen := make(map[string]bool, len(deductions))
	for _, rule := range deductions {
		if rule.Section == "" {
			return nil, fmt.Errorf("deduction rule with empty section name")
		}
		if seen[rule.Section] {
			return nil, fmt.Errorf("duplicate deduction section %q", rule.Section)
		}
		if !rule.Cap.RuleBased && rule.Cap.Amount < 0 {
			return nil, fmt.Errorf("section %q: negative cap %v", rule.Section, rule.Cap.Amount)
		}
		seen[rule.Section] = true
	}

	return &Catalog{regimes: regimes, deductions: deductions}, nil
}

// validateSlabs enforces the bracket invariants: sorted ascending,
// contiguous (each lower bound equals the previous upper bound, starting
// at zero), and the final bracket unbounded.
func validateSlabs(slabs []domain.SlabRule) error {
	if len(slabs) == 0 {
		return fmt.Errorf("empty slab table")
	}

	prevUpper := 0.0
	for i, s := range slabs {
		if s.LowerBound != prevUpper {
			return fmt.Errorf("slab %d: lower bound %v does not continue from %v", i, s.LowerBound, prevUpper)
		}
		if s.UpperBound <= s.LowerBound {
			return fmt.Errorf("slab %d: upper bound %v not above lower bound %v", i, s.UpperBound, s.LowerBound)
		}
		if s.Rate < 0 || s.Rate > 1 {
			return fmt.Errorf("slab %d: rate %v outside [0, 1]", i, s.Rate)
		}
		prevUpper = s.UpperBound
	}

	if !math.IsInf(slabs[len(slabs)-1].UpperBound, 1) {
		return fmt.Errorf("final slab must be unbounded, got %v", prevUpper)
	}
	return nil
}

func (c *Catalog) Regime(name domain.Regime) (domain.RegimeTable, bool) {
	table, ok := c.regimes[name]
	return table, ok
}

// Deductions returns the section rules in catalog order.
func (c *Catalog) Deductions() []domain.DeductionRule {
	return c.deductions
}

// DefaultCatalog builds the FY 2023-24 catalog: the old regime with full
// deduction eligibility and the new regime with lower nominal rates and no
// deductions.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog(
		[]domain.RegimeTable{
			{
				Name:             domain.RegimeOld,
				AllowsDeductions: true,
				Slabs: []domain.SlabRule{
					{LowerBound: 0, UpperBound: 250000, Rate: 0},
					{LowerBound: 250000, UpperBound: 500000, Rate: 0.05},
					{LowerBound: 500000, UpperBound: 750000, Rate: 0.10},
					{LowerBound: 750000, UpperBound: 1000000, Rate: 0.15},
					{LowerBound: 1000000, UpperBound: 1250000, Rate: 0.20},
					{LowerBound: 1250000, UpperBound: 1500000, Rate: 0.25},
					{LowerBound: 1500000, UpperBound: math.Inf(1), Rate: 0.30},
				},
			},
			{
				Name: domain.RegimeNew,
				Slabs: []domain.SlabRule{
					{LowerBound: 0, UpperBound: 300000, Rate: 0},
					{LowerBound: 300000, UpperBound: 600000, Rate: 0.05},
					{LowerBound: 600000, UpperBound: 900000, Rate: 0.10},
					{LowerBound: 900000, UpperBound: 1200000, Rate: 0.15},
					{LowerBound: 1200000, UpperBound: 1500000, Rate: 0.20},
					{LowerBound: 1500000, UpperBound: math.Inf(1), Rate: 0.30},
				},
			},
		},
		[]domain.DeductionRule{
			{Section: "80C", Cap: domain.FixedCap(150000), Instruments: []string{"PPF", "ELSS", "Life Insurance", "EPF"}},
			{Section: "80D", Cap: domain.FixedCap(25000), Instruments: []string{"Health Insurance"}},
			{Section: "80TTA", Cap: domain.FixedCap(10000), Instruments: []string{"Savings Account Interest"}},
			{Section: "HRA", Cap: domain.RuleBasedCap(), Instruments: []string{"House Rent"}},
		},
	)
	if err != nil {
		// The built-in tables satisfy the invariants by construction.
		panic(fmt.Sprintf("default catalog invalid: %v", err))
	}
	return catalog
}
