package tax

import (
	"math"
	"testing"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTables() []domain.RegimeTable {
	return []domain.RegimeTable{
		{
			Name:             domain.RegimeOld,
			AllowsDeductions: true,
			Slabs: []domain.SlabRule{
				{LowerBound: 0, UpperBound: 250000, Rate: 0},
				{LowerBound: 250000, UpperBound: math.Inf(1), Rate: 0.05},
			},
		},
		{
			Name: domain.RegimeNew,
			Slabs: []domain.SlabRule{
				{LowerBound: 0, UpperBound: 300000, Rate: 0},
				{LowerBound: 300000, UpperBound: math.Inf(1), Rate: 0.05},
			},
		},
	}
}

func TestNewCatalog_Valid(t *testing.T) {
	catalog, err := NewCatalog(validTables(), []domain.DeductionRule{
		{Section: "80C", Cap: domain.FixedCap(150000)},
	})

	require.NoError(t, err)
	table, ok := catalog.Regime(domain.RegimeOld)
	require.True(t, ok)
	assert.True(t, table.AllowsDeductions)
	assert.Len(t, catalog.Deductions(), 1)
}

func TestNewCatalog_RejectsGappedSlabs(t *testing.T) {
	tables := validTables()
	tables[0].Slabs[1].LowerBound = 260000

	_, err := NewCatalog(tables, nil)

	assert.ErrorContains(t, err, "does not continue")
}

func TestNewCatalog_RejectsBoundedFinalSlab(t *testing.T) {
	tables := validTables()
	tables[1].Slabs[1].UpperBound = 5000000

	_, err := NewCatalog(tables, nil)

	assert.ErrorContains(t, err, "final slab must be unbounded")
}

func TestNewCatalog_RejectsUnorderedSlabs(t *testing.T) {
	tables := validTables()
	tables[0].Slabs = []domain.SlabRule{
		{LowerBound: 250000, UpperBound: math.Inf(1), Rate: 0.05},
		{LowerBound: 0, UpperBound: 250000, Rate: 0},
	}

	_, err := NewCatalog(tables, nil)

	assert.Error(t, err)
}

func TestNewCatalog_RejectsMissingRegime(t *testing.T) {
	_, err := NewCatalog(validTables()[:1], nil)

	assert.ErrorContains(t, err, `missing slab table for regime "new"`)
}

func TestNewCatalog_RejectsUnknownRegime(t *testing.T) {
	tables := append(validTables(), domain.RegimeTable{
		Name:  domain.Regime("flat"),
		Slabs: []domain.SlabRule{{LowerBound: 0, UpperBound: math.Inf(1), Rate: 0.1}},
	})

	_, err := NewCatalog(tables, nil)

	assert.ErrorContains(t, err, `unknown regime "flat"`)
}

func TestNewCatalog_RejectsDuplicateDeductionSection(t *testing.T) {
	_, err := NewCatalog(validTables(), []domain.DeductionRule{
		{Section: "80C", Cap: domain.FixedCap(150000)},
		{Section: "80C", Cap: domain.FixedCap(100000)},
	})

	assert.ErrorContains(t, err, `duplicate deduction section "80C"`)
}

func TestDefaultCatalog_MatchesPublishedTables(t *testing.T) {
	catalog := DefaultCatalog()

	oldTable, ok := catalog.Regime(domain.RegimeOld)
	require.True(t, ok)
	assert.True(t, oldTable.AllowsDeductions)
	assert.Len(t, oldTable.Slabs, 7)

	newTable, ok := catalog.Regime(domain.RegimeNew)
	require.True(t, ok)
	assert.False(t, newTable.AllowsDeductions)
	assert.Len(t, newTable.Slabs, 6)
	assert.Equal(t, 300000.0, newTable.Slabs[0].UpperBound)

	sections := make([]string, 0)
	for _, rule := range catalog.Deductions() {
		sections = append(sections, rule.Section)
	}
	assert.Equal(t, []string{"80C", "80D", "80TTA", "HRA"}, sections)
}
