package client

import "context"

// Report formats accepted by the export endpoint.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

type ReportsEndpoint struct {
	transport *Transport
}

// AttendanceSummary downloads the per-employee summary in the given format
// and returns the raw document bytes.
func (r *ReportsEndpoint) AttendanceSummary(ctx context.Context, format string) ([]byte, error) {
	return r.transport.GetRaw(ctx, "/v1/reports/attendance-summary", map[string]string{"format": format})
}
