package export

import (
	"fmt"
	"io"

	"github.com/2beens/liftstats/internal/fitness/workouts"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	SheetImbalances = "Imbalances"
	SheetRecords    = "Records"
)

var (
	imbalanceHeader = []interface{}{
		"Comparison", "Lift 1", "Lift 1 e1RM", "Lift 1 Unit", "Lift 1 Level",
		"Lift 2", "Lift 2 e1RM", "Lift 2 Unit", "Lift 2 Level",
		"Ratio", "Target", "Balanced Range", "Guiding Level", "Classification",
	}
	recordsHeader = []interface{}{"Exercise", "Weight", "Unit", "Date", "Strength Level"}
)

// WriteWorkbook writes the summary as an xlsx workbook with one sheet for the
// imbalance findings and one for current personal records.
func WriteWorkbook(w io.Writer, summary Summary) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Errorf("close workbook: %s", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetImbalances); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetRecords); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	rows := [][]interface{}{imbalanceHeader}
	for _, finding := range summary.Findings {
		if finding.NoData {
			row := make([]interface{}, len(imbalanceHeader))
			for i := range row {
				row[i] = ""
			}
			row[0] = string(finding.Type)
			row[len(row)-1] = string(finding.Classification)
			rows = append(rows, row)
			continue
		}
		rows = append(rows, []interface{}{
			string(finding.Type),
			finding.Lift1Name, finding.Lift1Weight, string(finding.Lift1Unit), string(finding.Lift1Level),
			finding.Lift2Name, finding.Lift2Weight, string(finding.Lift2Unit), string(finding.Lift2Level),
			finding.Ratio, finding.TargetRatio, finding.BalancedRange, string(finding.GuidingLevel),
			string(finding.Classification),
		})
	}
	if err := writeRows(f, SheetImbalances, rows, headerStyle); err != nil {
		return err
	}

	rows = [][]interface{}{recordsHeader}
	for _, pr := range summary.CurrentPRs {
		rows = append(rows, []interface{}{
			pr.Exercise, pr.Weight, string(pr.WeightUnit), pr.Date.Format(workouts.DateLayout), string(pr.StrengthLevel),
		})
	}
	if err := writeRows(f, SheetRecords, rows, headerStyle); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}

	lastHeaderCell, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", lastHeaderCell, headerStyle)
}
