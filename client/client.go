// Package client is a typed REST client for the HRMS Lite API.
package client

// Client groups the per-resource endpoints over a shared transport.
type Client struct {
	Transport  *Transport
	Employees  *EmployeesEndpoint
	Attendance *AttendanceEndpoint
	Dashboard  *DashboardEndpoint
	Reports    *ReportsEndpoint
}

// New initializes the API client against the given base URL.
func New(baseURL string) *Client {
	t := NewTransport(baseURL)
	return &Client{
		Transport:  t,
		Employees:  &EmployeesEndpoint{transport: t},
		Attendance: &AttendanceEndpoint{transport: t},
		Dashboard:  &DashboardEndpoint{transport: t},
		Reports:    &ReportsEndpoint{transport: t},
	}
}
