package commands

import (
	"fmt"
	"strconv"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
	"github.com/fin-tools/tax-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/tax-atlas/pkg/services/tax"

	"github.com/spf13/cobra"
)

type CalculateCmd struct {
	income     float64
	deductions map[string]string
	regime     string
	csvPath    string
	planner    tax.Planner
	reporter   *export.Reporter
}

func NewCalculateCmd(planner tax.Planner, reporter *export.Reporter) *cobra.Command {
	cc := &CalculateCmd{planner: planner, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate tax liability for one regime",
		RunE:  cc.run,
	}

	cmd.Flags().Float64Var(&cc.income, "income", 0, "Gross annual income")
	cmd.Flags().StringToStringVar(&cc.deductions, "deduct", nil,
		"Deduction as section=amount (e.g. --deduct 80C=150000), repeatable")
	cmd.Flags().StringVar(&cc.regime, "regime", "old", "Tax regime (old or new)")
	cmd.Flags().StringVar(&cc.csvPath, "csv", "", "Also write the report to this CSV file")

	_ = cmd.MarkFlagRequired("income")

	return cmd
}

func (cc *CalculateCmd) run(cmd *cobra.Command, args []string) error {
	deductions, err := parseDeductions(cc.deductions)
	if err != nil {
		return err
	}

	result, err := cc.planner.CalculateTax(cc.income, deductions, domain.Regime(cc.regime))
	if err != nil {
		return fmt.Errorf("failed to calculate tax: %w", err)
	}

	recommendations, err := cc.planner.GetRecommendations(cc.income, deductions)
	if err != nil {
		return fmt.Errorf("failed to generate recommendations: %w", err)
	}

	report := tax.BuildTaxReport(result, recommendations)

	if cc.csvPath != "" {
		if err := export.WriteCSVFile(cc.csvPath, report); err != nil {
			return err
		}
	}

	return cc.reporter.Handle(report)
}

// parseDeductions converts the raw section=amount flag values to numbers.
func parseDeductions(raw map[string]string) (map[string]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	deductions := make(map[string]float64, len(raw))
	for section, value := range raw {
		amount, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q for section %s", value, section)
		}
		deductions[section] = amount
	}
	return deductions, nil
}
