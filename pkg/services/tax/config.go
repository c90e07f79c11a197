package tax

import (
	"fmt"
	"math"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

type slabConfig struct {
	UpTo float64 `mapstructure:"up_to"` // 0 means unbounded (final slab)
	Rate float64 `mapstructure:"rate"`
}

type regimeConfig struct {
	AllowsDeductions bool         `mapstructure:"allows_deductions"`
	Slabs            []slabConfig `mapstructure:"slabs"`
}

type deductionConfig struct {
	Section     string   `mapstructure:"section"`
	Limit       float64  `mapstructure:"limit"`
	RuleBased   bool     `mapstructure:"rule_based"`
	Instruments []string `mapstructure:"instruments"`
}

type catalogConfig struct {
	Regimes    map[string]regimeConfig `mapstructure:"regimes"`
	Deductions []deductionConfig       `mapstructure:"deductions"`
}

// LoadCatalog reads a slab/deduction catalog from the given YAML file,
// e.g. to swap in a new fiscal year's tables without a rebuild.
func LoadCatalog(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var cfg catalogConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	tables := make([]domain.RegimeTable, 0, len(cfg.Regimes))
	for name, rc := range cfg.Regimes {
		table := domain.RegimeTable{
			Name:             domain.Regime(name),
			AllowsDeductions: rc.AllowsDeductions,
		}
		lower := 0.0
		for _, sc := range rc.Slabs {
			upper := sc.UpTo
			if upper == 0 {
				upper = math.Inf(1)
			}
			table.Slabs = append(table.Slabs, domain.SlabRule{
				LowerBound: lower,
				UpperBound: upper,
				Rate:       sc.Rate,
			})
			lower = upper
		}
		tables = append(tables, table)
	}

	deductions := make([]domain.DeductionRule, 0, len(cfg.Deductions))
	for _, dc := range cfg.Deductions {
		sectionCap := domain.FixedCap(dc.Limit)
		if dc.RuleBased {
			sectionCap = domain.RuleBasedCap()
		}
		deductions = append(deductions, domain.DeductionRule{
			Section:     dc.Section,
			Cap:         sectionCap,
			Instruments: dc.Instruments,
		})
	}

	return NewCatalog(tables, deductions)
}
