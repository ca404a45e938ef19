package client

import "context"

type DashboardEndpoint struct {
	transport *Transport
}

func (d *DashboardEndpoint) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := d.transport.Get(ctx, "/v1/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
