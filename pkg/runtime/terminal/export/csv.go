package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
)

// WriteCSV serializes a report into a single CSV stream, one block per
// section with its title on a row of its own. This is the tabular export
// handed to spreadsheet tools.
func WriteCSV(w io.Writer, report *domain.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{report.Title}); err != nil {
		return fmt.Errorf("failed to write report title: %w", err)
	}
	if err := cw.Write([]string{"Total Tax", fmt.Sprintf("%.2f", report.TotalAmount), report.Currency}); err != nil {
		return fmt.Errorf("failed to write report total: %w", err)
	}

	for _, section := range report.Sections {
		if err := cw.Write([]string{""}); err != nil {
			return err
		}
		if err := cw.Write([]string{section.Title}); err != nil {
			return fmt.Errorf("failed to write section title: %w", err)
		}

		for key, value := range section.Summary {
			if err := cw.Write([]string{key, fmt.Sprintf("%v", value)}); err != nil {
				return fmt.Errorf("failed to write summary row: %w", err)
			}
		}

		if len(section.Details) == 0 {
			continue
		}
		if err := cw.Write([]string{"Name", "Value", "Unit", "Description"}); err != nil {
			return fmt.Errorf("failed to write header row: %w", err)
		}
		for _, d := range section.Details {
			row := []string{d.Name, fmt.Sprintf("%v", d.Value), d.Unit, d.Description}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write detail row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the report to the given path, creating or truncating
// the file.
func WriteCSVFile(path string, report *domain.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := WriteCSV(f, report); err != nil {
		return err
	}
	return f.Close()
}
