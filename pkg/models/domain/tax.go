package domain

// Regime selects one of the two slab schemes.
type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

func (r Regime) Valid() bool {
	return r == RegimeOld || r == RegimeNew
}

// SlabRule is one bracket of a progressive tax table. The final rule of a
// table has UpperBound = math.Inf(1).
type SlabRule struct {
	LowerBound float64
	UpperBound float64
	Rate       float64 // fraction, 0..1
}

// RegimeTable is the ordered slab sequence for one regime. Tables are built
// once at startup and never mutated afterwards.
type RegimeTable struct {
	Name             Regime
	Slabs            []SlabRule
	AllowsDeductions bool
}

// Cap is the claim limit of a deduction section: either a fixed amount or
// rule-based (HRA-style, no flat numeric ceiling).
type Cap struct {
	Amount    float64
	RuleBased bool
}

func FixedCap(amount float64) Cap {
	return Cap{Amount: amount}
}

func RuleBasedCap() Cap {
	return Cap{RuleBased: true}
}

// DeductionRule describes one section of the deduction catalog.
type DeductionRule struct {
	Section     string
	Cap         Cap
	Instruments []string
}

// SlabContribution is one row of a tax breakup.
type SlabContribution struct {
	Slab string  // "250001-500000", final slab "1500001+"
	Rate string  // "5%"
	Tax  float64 // INR
}

// TaxResult is the outcome of a single regime computation.
type TaxResult struct {
	Regime          Regime
	GrossIncome     float64
	TotalDeductions float64
	TaxableIncome   float64
	Breakup         []SlabContribution
	BaseTax         float64
	Cess            float64
	TotalTax        float64
}

// RegimeComparison pairs the results of both regimes on the same inputs.
type RegimeComparison struct {
	Old         TaxResult
	New         TaxResult
	Recommended Regime
	Savings     float64
}

// Recommendation reports remaining headroom for one deduction section.
// RemainingLimit is zero for rule-based sections; RuleBased distinguishes
// that sentinel from genuinely exhausted headroom.
type Recommendation struct {
	Section              string
	CurrentUtilization   float64
	RemainingLimit       float64
	RuleBased            bool
	SuggestedInstruments []string
}
