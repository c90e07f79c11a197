package api

// CalculateRequest is the payload for the calculate endpoint. Regime is
// optional on the comparison/recommendation endpoints and ignored there.
type CalculateRequest struct {
	Income     float64            `json:"income"`
	Deductions map[string]float64 `json:"deductions"`
	Regime     string             `json:"regime"`
}

type CompareRequest struct {
	Income     float64            `json:"income"`
	Deductions map[string]float64 `json:"deductions"`
}

type SlabContribution struct {
	Slab string  `json:"slab"`
	Rate string  `json:"rate"`
	Tax  float64 `json:"tax"`
}

type TaxResult struct {
	Regime          string             `json:"regime"`
	GrossIncome     float64            `json:"gross_income"`
	TotalDeductions float64            `json:"total_deductions"`
	TaxableIncome   float64            `json:"taxable_income"`
	TaxBreakup      []SlabContribution `json:"tax_breakup"`
	BaseTax         float64            `json:"base_tax"`
	Cess            float64            `json:"cess"`
	TotalTax        float64            `json:"total_tax"`
}

type RegimeComparison struct {
	OldRegime         TaxResult `json:"old_regime"`
	NewRegime         TaxResult `json:"new_regime"`
	RecommendedRegime string    `json:"recommended_regime"`
	Savings           float64   `json:"savings"`
}

type Recommendation struct {
	Section              string   `json:"section"`
	CurrentUtilization   float64  `json:"current_utilization"`
	RemainingLimit       float64  `json:"remaining_limit"`
	RuleBased            bool     `json:"rule_based"`
	SuggestedInstruments []string `json:"suggested_instruments"`
}

// Error is the structured failure body returned on rejected requests.
type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"error"`
}
