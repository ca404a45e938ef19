// Package reports renders the per-employee attendance summary as a
// downloadable spreadsheet or PDF.
package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"hrmlite/internal/domain/attendance"
)

type SummarySource interface {
	Summary(ctx context.Context) ([]attendance.SummaryRow, error)
}

type Service struct {
	source SummarySource
}

func NewService(source SummarySource) *Service {
	return &Service{source: source}
}

func (s *Service) SummaryXLSX(ctx context.Context) ([]byte, error) {
	rows, err := s.source.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return RenderSummaryXLSX(rows)
}

func (s *Service) SummaryPDF(ctx context.Context) ([]byte, error) {
	rows, err := s.source.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return RenderSummaryPDF(rows)
}

var summaryHeaders = []string{"Employee ID", "Name", "Present Days", "Absent Days", "Total Days"}

func RenderSummaryXLSX(rows []attendance.SummaryRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance Summary"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, header := range summaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}
	for i, row := range rows {
		values := []any{row.EmployeeID, row.EmployeeName, row.TotalPresentDays, row.TotalAbsentDays, row.TotalDays}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func RenderSummaryPDF(rows []attendance.SummaryRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Attendance Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, "Generated "+time.Now().UTC().Format("2006-01-02"))
	pdf.Ln(10)

	widths := []float64{30, 60, 30, 30, 30}
	pdf.SetFont("Helvetica", "B", 10)
	for i, header := range summaryHeaders {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(widths[0], 8, row.EmployeeID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, row.EmployeeName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, fmt.Sprintf("%d", row.TotalPresentDays), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 8, fmt.Sprintf("%d", row.TotalAbsentDays), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 8, fmt.Sprintf("%d", row.TotalDays), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
