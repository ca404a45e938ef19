package client

import (
	"context"
	"fmt"
)

type AttendanceEndpoint struct {
	transport *Transport
}

// List returns attendance records, newest first. Empty filter values are
// omitted from the query string.
func (a *AttendanceEndpoint) List(ctx context.Context, startDate, endDate string) ([]AttendanceRecord, error) {
	query := map[string]string{
		"start_date": startDate,
		"end_date":   endDate,
	}
	var records []AttendanceRecord
	if err := a.transport.Get(ctx, "/v1/attendance", query, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (a *AttendanceEndpoint) Mark(ctx context.Context, input MarkAttendanceInput) (*AttendanceRecord, error) {
	var created AttendanceRecord
	if err := a.transport.Post(ctx, "/v1/attendance", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *AttendanceEndpoint) Update(ctx context.Context, id int64, input UpdateAttendanceInput) (*AttendanceRecord, error) {
	var updated AttendanceRecord
	if err := a.transport.Put(ctx, fmt.Sprintf("/v1/attendance/%d", id), input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *AttendanceEndpoint) Delete(ctx context.Context, id int64) error {
	return a.transport.Delete(ctx, fmt.Sprintf("/v1/attendance/%d", id))
}

func (a *AttendanceEndpoint) Summary(ctx context.Context) ([]AttendanceSummaryRow, error) {
	var rows []AttendanceSummaryRow
	if err := a.transport.Get(ctx, "/v1/attendance/summary/by-employee", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ByEmployee returns all records for one employee referenced by business code.
func (a *AttendanceEndpoint) ByEmployee(ctx context.Context, employeeCode string) ([]AttendanceRecord, error) {
	var records []AttendanceRecord
	if err := a.transport.Get(ctx, "/v1/attendance/"+employeeCode, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
