package controller

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"hrmlite/client"
	"hrmlite/console/loader"
	"hrmlite/console/paginate"
)

// DashboardData is the stats snapshot plus the per-employee summary table.
type DashboardData struct {
	Stats   client.DashboardStats
	Summary []client.AttendanceSummaryRow
}

// DashboardPage is read-only: it loads both collections in parallel and
// derives display percentages; nothing is mutated locally.
type DashboardPage struct {
	api *client.Client

	resource *loader.Resource[DashboardData]
	page     int
	pageSize int
}

func NewDashboardPage(api *client.Client, onChange func()) *DashboardPage {
	p := &DashboardPage{api: api, page: 1, pageSize: defaultPageSize}
	p.resource = loader.New(p.fetch, onChange)
	return p
}

func (p *DashboardPage) fetch(ctx context.Context) (DashboardData, error) {
	var data DashboardData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := p.api.Dashboard.Stats(gctx)
		if err != nil {
			return err
		}
		data.Stats = *stats
		return nil
	})
	g.Go(func() error {
		summary, err := p.api.Attendance.Summary(gctx)
		if err != nil {
			return err
		}
		data.Summary = summary
		return nil
	})
	if err := g.Wait(); err != nil {
		return DashboardData{}, err
	}
	return data, nil
}

func (p *DashboardPage) Init(ctx context.Context) {
	p.resource.Refetch(ctx)
}

func (p *DashboardPage) Retry(ctx context.Context) {
	p.resource.Refetch(ctx)
}

func (p *DashboardPage) Loading() bool { return p.resource.Loading() }

func (p *DashboardPage) LoadError() string {
	if p.resource.State() == loader.Failed {
		return p.resource.Err()
	}
	return ""
}

func (p *DashboardPage) Stats() client.DashboardStats {
	return p.resource.Data().Stats
}

func (p *DashboardPage) SummaryRows() paginate.Page[client.AttendanceSummaryRow] {
	return paginate.Paginate(p.resource.Data().Summary, p.page, p.pageSize)
}

func (p *DashboardPage) SetPage(page int) { p.page = page }

// AttendanceRate renders present-today over total employees as a percentage
// with one decimal place, "0" when there are no employees.
func (p *DashboardPage) AttendanceRate() string {
	stats := p.resource.Data().Stats
	return percent(stats.PresentToday, stats.TotalEmployees)
}

// RowPercent is the same projection per summary row: present days over total
// recorded days.
func RowPercent(row client.AttendanceSummaryRow) string {
	return percent(row.TotalPresentDays, row.TotalDays)
}

func percent(part, total int) string {
	if total <= 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", float64(part)/float64(total)*100)
}
