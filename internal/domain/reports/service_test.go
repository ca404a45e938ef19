package reports

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"

	"hrmlite/internal/domain/attendance"
)

var sampleRows = []attendance.SummaryRow{
	{EmployeeID: "EMP-0001", EmployeeName: "Jane Doe", TotalPresentDays: 5, TotalAbsentDays: 1, TotalDays: 6},
	{EmployeeID: "EMP-0002", EmployeeName: "John Roe", TotalPresentDays: 4, TotalAbsentDays: 2, TotalDays: 6},
}

func TestRenderSummaryXLSX(t *testing.T) {
	raw, err := RenderSummaryXLSX(sampleRows)
	if err != nil {
		t.Fatalf("RenderSummaryXLSX failed: %v", err)
	}
	// XLSX is a zip archive.
	if !bytes.HasPrefix(raw, []byte("PK")) {
		t.Fatal("output is not a zip archive")
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	cellRows, err := f.GetRows("Attendance Summary")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(cellRows) != 3 {
		t.Fatalf("sheet has %d rows, want header plus 2", len(cellRows))
	}
	if cellRows[0][0] != "Employee ID" {
		t.Fatalf("header = %v", cellRows[0])
	}
	if cellRows[1][0] != "EMP-0001" || cellRows[1][1] != "Jane Doe" {
		t.Fatalf("first data row = %v", cellRows[1])
	}
}

func TestRenderSummaryPDF(t *testing.T) {
	raw, err := RenderSummaryPDF(sampleRows)
	if err != nil {
		t.Fatalf("RenderSummaryPDF failed: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}
}

func TestRenderEmptySummary(t *testing.T) {
	if _, err := RenderSummaryXLSX(nil); err != nil {
		t.Fatalf("empty XLSX failed: %v", err)
	}
	if _, err := RenderSummaryPDF(nil); err != nil {
		t.Fatalf("empty PDF failed: %v", err)
	}
}

type staticSource []attendance.SummaryRow

func (s staticSource) Summary(ctx context.Context) ([]attendance.SummaryRow, error) {
	return s, nil
}

func TestServiceWrapsSource(t *testing.T) {
	service := NewService(staticSource(sampleRows))

	xlsx, err := service.SummaryXLSX(context.Background())
	if err != nil {
		t.Fatalf("SummaryXLSX failed: %v", err)
	}
	if len(xlsx) == 0 {
		t.Fatal("empty XLSX output")
	}

	pdf, err := service.SummaryPDF(context.Background())
	if err != nil {
		t.Fatalf("SummaryPDF failed: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("empty PDF output")
	}
}
