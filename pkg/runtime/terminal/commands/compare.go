package commands

import (
	"fmt"

	"github.com/fin-tools/tax-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/tax-atlas/pkg/services/tax"

	"github.com/spf13/cobra"
)

type CompareCmd struct {
	income     float64
	deductions map[string]string
	csvPath    string
	planner    tax.Planner
	reporter   *export.Reporter
}

func NewCompareCmd(planner tax.Planner, reporter *export.Reporter) *cobra.Command {
	cc := &CompareCmd{planner: planner, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare both tax regimes and recommend the cheaper one",
		RunE:  cc.run,
	}

	cmd.Flags().Float64Var(&cc.income, "income", 0, "Gross annual income")
	cmd.Flags().StringToStringVar(&cc.deductions, "deduct", nil,
		"Deduction as section=amount (e.g. --deduct 80C=150000), repeatable")
	cmd.Flags().StringVar(&cc.csvPath, "csv", "", "Also write the report to this CSV file")

	_ = cmd.MarkFlagRequired("income")

	return cmd
}

func (cc *CompareCmd) run(cmd *cobra.Command, args []string) error {
	deductions, err := parseDeductions(cc.deductions)
	if err != nil {
		return err
	}

	comparison, err := cc.planner.CompareRegimes(cc.income, deductions)
	if err != nil {
		return fmt.Errorf("failed to compare regimes: %w", err)
	}

	recommendations, err := cc.planner.GetRecommendations(cc.income, deductions)
	if err != nil {
		return fmt.Errorf("failed to generate recommendations: %w", err)
	}

	report := tax.BuildComparisonReport(comparison, recommendations)

	if cc.csvPath != "" {
		if err := export.WriteCSVFile(cc.csvPath, report); err != nil {
			return err
		}
	}

	return cc.reporter.Handle(report)
}
