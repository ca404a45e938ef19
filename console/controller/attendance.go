package controller

import (
	"context"

	"golang.org/x/sync/errgroup"

	"hrmlite/client"
	"hrmlite/console/loader"
	"hrmlite/console/paginate"
	"hrmlite/console/toast"
)

// AttendanceData is the pair of collections the attendance page needs: the
// records themselves and the employees that populate the mark-attendance
// selector. Both must load for the page to render.
type AttendanceData struct {
	Employees []client.Employee
	Records   []client.AttendanceRecord
}

// AttendancePage orchestrates the attendance list. The date filters form the
// loader's dependency set: changing either refetches, clearing both refetches
// unfiltered.
type AttendancePage struct {
	api    *client.Client
	Toasts *toast.Toaster

	resource *loader.Resource[AttendanceData]
	page     int
	pageSize int

	startDate string
	endDate   string

	dialog   Dialog
	selected *client.AttendanceRecord
	deleting bool
}

func NewAttendancePage(api *client.Client, onChange func()) *AttendancePage {
	p := &AttendancePage{
		api:      api,
		Toasts:   toast.New(),
		page:     1,
		pageSize: defaultPageSize,
	}
	p.resource = loader.New(p.fetch, onChange)
	return p
}

func (p *AttendancePage) fetch(ctx context.Context) (AttendanceData, error) {
	var data AttendanceData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		employees, err := p.api.Employees.List(gctx)
		if err != nil {
			return err
		}
		data.Employees = employees
		return nil
	})
	g.Go(func() error {
		records, err := p.api.Attendance.List(gctx, p.startDate, p.endDate)
		if err != nil {
			return err
		}
		data.Records = records
		return nil
	})
	if err := g.Wait(); err != nil {
		return AttendanceData{}, err
	}
	return data, nil
}

func (p *AttendancePage) Init(ctx context.Context) {
	p.resource.SetDeps(ctx, p.startDate, p.endDate)
}

func (p *AttendancePage) Retry(ctx context.Context) {
	p.resource.Refetch(ctx)
}

func (p *AttendancePage) Loading() bool { return p.resource.Loading() }

func (p *AttendancePage) LoadError() string {
	if p.resource.State() == loader.Failed {
		return p.resource.Err()
	}
	return ""
}

func (p *AttendancePage) Employees() []client.Employee {
	return p.resource.Data().Employees
}

func (p *AttendancePage) Rows() paginate.Page[client.AttendanceRecord] {
	return paginate.Paginate(p.resource.Data().Records, p.page, p.pageSize)
}

func (p *AttendancePage) SetPage(page int) { p.page = page }

func (p *AttendancePage) StartDate() string { return p.startDate }
func (p *AttendancePage) EndDate() string   { return p.endDate }

func (p *AttendancePage) SetStartDate(ctx context.Context, date string) {
	p.startDate = date
	p.resource.SetDeps(ctx, p.startDate, p.endDate)
}

func (p *AttendancePage) SetEndDate(ctx context.Context, date string) {
	p.endDate = date
	p.resource.SetDeps(ctx, p.startDate, p.endDate)
}

func (p *AttendancePage) ClearFilters(ctx context.Context) {
	p.startDate = ""
	p.endDate = ""
	p.resource.SetDeps(ctx, p.startDate, p.endDate)
}

func (p *AttendancePage) Dialog() Dialog                     { return p.dialog }
func (p *AttendancePage) Selected() *client.AttendanceRecord { return p.selected }

func (p *AttendancePage) BeginEdit(record client.AttendanceRecord) {
	p.selected = &record
	p.dialog = DialogEdit
}

func (p *AttendancePage) BeginDelete(record client.AttendanceRecord) {
	p.selected = &record
	p.dialog = DialogConfirmDelete
}

func (p *AttendancePage) CloseDialog() {
	p.dialog = DialogNone
	p.selected = nil
}

// Mark submits a new attendance record; errors go back to the form.
func (p *AttendancePage) Mark(ctx context.Context, input client.MarkAttendanceInput) error {
	if _, err := p.api.Attendance.Mark(ctx, input); err != nil {
		p.Toasts.ShowError(mutationMessage(err, "failed to mark attendance"))
		return err
	}
	p.Toasts.ShowSuccess("Attendance marked successfully!")
	p.resource.Refetch(ctx)
	return nil
}

func (p *AttendancePage) SaveRecord(ctx context.Context, input client.UpdateAttendanceInput) error {
	if p.selected == nil {
		return nil
	}
	if _, err := p.api.Attendance.Update(ctx, p.selected.ID, input); err != nil {
		p.Toasts.ShowError(mutationMessage(err, "failed to update attendance"))
		return err
	}
	p.Toasts.ShowSuccess("Attendance updated successfully!")
	p.CloseDialog()
	p.resource.Refetch(ctx)
	return nil
}

func (p *AttendancePage) ConfirmDelete(ctx context.Context) {
	if p.dialog != DialogConfirmDelete || p.selected == nil || p.deleting {
		return
	}
	p.deleting = true
	err := p.api.Attendance.Delete(ctx, p.selected.ID)
	p.deleting = false
	p.CloseDialog()
	if err != nil {
		p.Toasts.ShowError(mutationMessage(err, "failed to delete attendance"))
		return
	}
	p.Toasts.ShowSuccess("Attendance record deleted successfully!")
	p.resource.Refetch(ctx)
}

func (p *AttendancePage) Deleting() bool { return p.deleting }
