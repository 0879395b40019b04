// Package report writes the numbers behind the charts to an Excel
// workbook.
package report

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/vdobler/pageviews"
)

// Sheet names of the workbook, in order.
const (
	BandSheet        = "Band"
	MonthlyMeanSheet = "Monthly Means"
	YearBoxSheet     = "Yearly Boxes"
	MonthBoxSheet    = "Monthly Boxes"
)

var boxHeaders = []string{
	"Group", "N", "Min", "Low Whisker", "Q1", "Median", "Q3", "High Whisker", "Max", "Outliers",
}

// Write saves s as a workbook to path, replacing an existing file.
func Write(path string, s pageviews.Summary, log logrus.FieldLogger) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", BandSheet); err != nil {
		return err
	}
	band := [][]any{
		{"Input", s.Input},
		{"Method", s.Band.Method.String()},
		{"Lower Quantile", s.Band.LowerQ},
		{"Upper Quantile", s.Band.UpperQ},
		{"Lower Bound", s.Band.Lower},
		{"Upper Bound", s.Band.Upper},
		{"Loaded", s.Loaded},
		{"Kept", s.Kept},
	}
	if err := writeTable(f, BandSheet, []string{"Field", "Value"}, band); err != nil {
		return err
	}

	// One row per year, one column per month. Months without data stay
	// empty.
	headers := append([]string{"Year"}, pageviews.MonthNames()...)
	var means [][]any
	for _, year := range s.Means.Years() {
		row := []any{year}
		for _, m := range s.Means[year] {
			if math.IsNaN(m) {
				row = append(row, nil)
			} else {
				row = append(row, m)
			}
		}
		means = append(means, row)
	}
	if err := addSheet(f, MonthlyMeanSheet, headers, means); err != nil {
		return err
	}

	if err := addSheet(f, YearBoxSheet, boxHeaders, boxRows(s.YearBoxes)); err != nil {
		return err
	}
	if err := addSheet(f, MonthBoxSheet, boxHeaders, boxRows(s.MonthBoxes)); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return err
	}
	if log != nil {
		log.WithField("module", "report").WithField("file", path).Info("Wrote summary")
	}
	return nil
}

func boxRows(boxes []pageviews.BoxGroup) [][]any {
	rows := make([][]any, len(boxes))
	for i, b := range boxes {
		sum := b.Summary
		rows[i] = []any{b.Label, sum.N, sum.Min, sum.LowWhisker, sum.Q1,
			sum.Median, sum.Q3, sum.HighWhisker, sum.Max, len(sum.Outliers)}
	}
	return rows
}

func addSheet(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	return writeTable(f, sheet, headers, rows)
}

// writeTable fills sheet with a header row followed by rows. Nil values
// leave their cell empty.
func writeTable(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

