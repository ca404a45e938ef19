package controller

import (
	"context"

	"hrmlite/client"
	"hrmlite/console/loader"
	"hrmlite/console/paginate"
	"hrmlite/console/toast"
)

// EmployeesPage orchestrates the employee list: load on init, paginated
// rows, and create/update/delete mutations that refetch the full collection
// on success rather than merging locally.
type EmployeesPage struct {
	api    *client.Client
	Toasts *toast.Toaster

	resource *loader.Resource[[]client.Employee]
	page     int
	pageSize int

	dialog   Dialog
	selected *client.Employee
	deleting bool
}

func NewEmployeesPage(api *client.Client, onChange func()) *EmployeesPage {
	p := &EmployeesPage{
		api:      api,
		Toasts:   toast.New(),
		page:     1,
		pageSize: defaultPageSize,
	}
	p.resource = loader.New(func(ctx context.Context) ([]client.Employee, error) {
		return api.Employees.List(ctx)
	}, onChange)
	return p
}

func (p *EmployeesPage) Init(ctx context.Context) {
	p.resource.Refetch(ctx)
}

// Retry re-runs the load after a page-level failure.
func (p *EmployeesPage) Retry(ctx context.Context) {
	p.resource.Refetch(ctx)
}

func (p *EmployeesPage) Loading() bool { return p.resource.Loading() }

func (p *EmployeesPage) LoadError() string {
	if p.resource.State() == loader.Failed {
		return p.resource.Err()
	}
	return ""
}

func (p *EmployeesPage) Rows() paginate.Page[client.Employee] {
	return paginate.Paginate(p.resource.Data(), p.page, p.pageSize)
}

func (p *EmployeesPage) SetPage(page int) { p.page = page }
func (p *EmployeesPage) Page() int        { return p.page }

func (p *EmployeesPage) Dialog() Dialog             { return p.dialog }
func (p *EmployeesPage) Selected() *client.Employee { return p.selected }

func (p *EmployeesPage) OpenAdd() {
	p.dialog = DialogAdd
}

func (p *EmployeesPage) BeginEdit(emp client.Employee) {
	p.selected = &emp
	p.dialog = DialogEdit
}

func (p *EmployeesPage) BeginDelete(emp client.Employee) {
	p.selected = &emp
	p.dialog = DialogConfirmDelete
}

func (p *EmployeesPage) CloseDialog() {
	p.dialog = DialogNone
	p.selected = nil
}

// AddEmployee submits the creation. On failure the error is returned to the
// form so it can leave its busy state with the input preserved.
func (p *EmployeesPage) AddEmployee(ctx context.Context, input client.EmployeeInput) error {
	if _, err := p.api.Employees.Create(ctx, input); err != nil {
		p.Toasts.ShowError(mutationMessage(err, "failed to add employee"))
		return err
	}
	p.Toasts.ShowSuccess("Employee added successfully!")
	p.CloseDialog()
	p.resource.Refetch(ctx)
	return nil
}

// SaveEmployee updates the selected record; same contract as AddEmployee.
func (p *EmployeesPage) SaveEmployee(ctx context.Context, input client.EmployeeInput) error {
	if p.selected == nil {
		return nil
	}
	if _, err := p.api.Employees.Update(ctx, p.selected.ID, input); err != nil {
		p.Toasts.ShowError(mutationMessage(err, "failed to update employee"))
		return err
	}
	p.Toasts.ShowSuccess("Employee updated successfully!")
	p.CloseDialog()
	p.resource.Refetch(ctx)
	return nil
}

// ConfirmDelete fires the delete for the selected record. It is a no-op
// unless the confirmation dialog is open, and guarded against a second
// submission while one is outstanding. The dialog closes and the selection
// clears on completion either way; only success triggers a refetch.
func (p *EmployeesPage) ConfirmDelete(ctx context.Context) {
	if p.dialog != DialogConfirmDelete || p.selected == nil || p.deleting {
		return
	}
	p.deleting = true
	err := p.api.Employees.Delete(ctx, p.selected.ID)
	p.deleting = false
	p.CloseDialog()
	if err != nil {
		p.Toasts.ShowError(mutationMessage(err, "failed to delete employee"))
		return
	}
	p.Toasts.ShowSuccess("Employee deleted successfully!")
	p.resource.Refetch(ctx)
}

func (p *EmployeesPage) Deleting() bool { return p.deleting }

// mutationMessage prefers the server-reported message and falls back to a
// generic one for transport-level failures.
func mutationMessage(err error, fallback string) string {
	if apiErr, ok := err.(*client.APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
