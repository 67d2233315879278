// Package export turns a student report into an Excel workbook.
package export

import (
	"fmt"
	"io"

	"github.com/nfrund/marksweb/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	// SheetName is the single sheet the workbook contains.
	SheetName = "Report"
	// ContentType is the MIME type of the produced workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// Filename is suggested to browsers in Content-Disposition.
	Filename = "grade_report.xlsx"
)

// WriteReport writes report as an .xlsx workbook to w: one row per subject,
// followed by the totals.
func WriteReport(w io.Writer, report *domain.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	rows := [][]interface{}{{"Subject", "Score", "Grade"}}
	if report != nil {
		for _, m := range report.Marks {
			rows = append(rows, []interface{}{m.Subject, m.Score, m.Grade})
		}
		rows = append(rows,
			[]interface{}{},
			[]interface{}{"Student", report.StudentName},
			[]interface{}{"Total", report.TotalScore},
			[]interface{}{"Percentage", report.Percentage},
			[]interface{}{"Overall grade", report.OverallGrade},
		)
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
