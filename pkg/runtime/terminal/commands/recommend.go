package commands

import (
	"fmt"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
	"github.com/fin-tools/tax-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/tax-atlas/pkg/services/tax"

	"github.com/spf13/cobra"
)

type RecommendCmd struct {
	income     float64
	deductions map[string]string
	csvPath    string
	planner    tax.Planner
	reporter   *export.Reporter
}

func NewRecommendCmd(planner tax.Planner, reporter *export.Reporter) *cobra.Command {
	rc := &RecommendCmd{planner: planner, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "List deduction sections with remaining headroom",
		RunE:  rc.run,
	}

	cmd.Flags().Float64Var(&rc.income, "income", 0, "Gross annual income")
	cmd.Flags().StringToStringVar(&rc.deductions, "deduct", nil,
		"Current deduction as section=amount, repeatable")
	cmd.Flags().StringVar(&rc.csvPath, "csv", "", "Also write the report to this CSV file")

	_ = cmd.MarkFlagRequired("income")

	return cmd
}

func (rc *RecommendCmd) run(cmd *cobra.Command, args []string) error {
	deductions, err := parseDeductions(rc.deductions)
	if err != nil {
		return err
	}

	recommendations, err := rc.planner.GetRecommendations(rc.income, deductions)
	if err != nil {
		return fmt.Errorf("failed to generate recommendations: %w", err)
	}

	report := &domain.Report{
		Title:    "Tax Saving Recommendations",
		Currency: "INR",
		Sections: []domain.ReportSection{tax.RecommendationsSection(recommendations)},
	}

	if rc.csvPath != "" {
		if err := export.WriteCSVFile(rc.csvPath, report); err != nil {
			return err
		}
	}

	return rc.reporter.Handle(report)
}
