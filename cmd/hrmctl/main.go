// hrmctl is a console front end for the HRMS Lite API. Each invocation
// builds the matching page controller, loads it, performs at most one
// mutation, and renders the resulting table.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"hrmlite/client"
	"hrmlite/console/controller"
	"hrmlite/console/toast"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	api := client.New(client.BaseURLFromEnv())
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "employees":
		err = runEmployees(ctx, api, os.Args[2:])
	case "attendance":
		err = runAttendance(ctx, api, os.Args[2:])
	case "dashboard":
		err = runDashboard(ctx, api, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: hrmctl <command> [flags]

commands:
  employees   list employees; -add/-update/-delete for mutations
  attendance  list records; -mark/-update/-delete; -start/-end filters
  dashboard   stats, attendance rate and per-employee summary`)
}

func runEmployees(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("employees", flag.ExitOnError)
	page := fs.Int("page", 1, "page to display")
	add := fs.Bool("add", false, "create an employee")
	update := fs.Int64("update", 0, "update the employee with this id")
	del := fs.Int64("delete", 0, "delete the employee with this id")
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	dept := fs.String("dept", "", "department")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p := controller.NewEmployeesPage(api, nil)
	p.Init(ctx)
	if msg := p.LoadError(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	input := client.EmployeeInput{FullName: *name, Email: *email, Department: *dept}
	switch {
	case *add:
		p.OpenAdd()
		if err := p.AddEmployee(ctx, input); err != nil {
			return err
		}
	case *update != 0:
		emp, ok := findEmployee(p, *update)
		if !ok {
			return fmt.Errorf("employee %d not in the loaded list", *update)
		}
		p.BeginEdit(emp)
		if err := p.SaveEmployee(ctx, input); err != nil {
			return err
		}
	case *del != 0:
		emp, ok := findEmployee(p, *del)
		if !ok {
			return fmt.Errorf("employee %d not in the loaded list", *del)
		}
		p.BeginDelete(emp)
		fmt.Printf("deleting %s (%s)\n", emp.FullName, emp.EmployeeID)
		p.ConfirmDelete(ctx)
	}
	printToast(p.Toasts)

	p.SetPage(*page)
	rows := p.Rows()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tEMAIL\tDEPARTMENT")
	for _, emp := range rows.Visible {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", emp.ID, emp.EmployeeID, emp.FullName, emp.Email, emp.Department)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("page %d of %d\n", rows.Page, rows.TotalPages)
	return nil
}

func findEmployee(p *controller.EmployeesPage, id int64) (client.Employee, bool) {
	for _, emp := range paginateAll(p) {
		if emp.ID == id {
			return emp, true
		}
	}
	return client.Employee{}, false
}

// paginateAll walks every page of the employee list.
func paginateAll(p *controller.EmployeesPage) []client.Employee {
	var all []client.Employee
	for page := 1; ; page++ {
		p.SetPage(page)
		rows := p.Rows()
		all = append(all, rows.Visible...)
		if page >= rows.TotalPages {
			break
		}
	}
	return all
}

func runAttendance(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("attendance", flag.ExitOnError)
	page := fs.Int("page", 1, "page to display")
	start := fs.String("start", "", "start date filter (YYYY-MM-DD)")
	end := fs.String("end", "", "end date filter (YYYY-MM-DD)")
	mark := fs.Bool("mark", false, "mark attendance")
	update := fs.Int64("update", 0, "update the record with this id")
	del := fs.Int64("delete", 0, "delete the record with this id")
	employee := fs.String("employee", "", "employee code (EMP-XXXX)")
	date := fs.String("date", "", "attendance date (YYYY-MM-DD)")
	status := fs.String("status", "", "PRESENT or ABSENT")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p := controller.NewAttendancePage(api, nil)
	p.Init(ctx)
	if *start != "" {
		p.SetStartDate(ctx, *start)
	}
	if *end != "" {
		p.SetEndDate(ctx, *end)
	}
	if msg := p.LoadError(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	switch {
	case *mark:
		input := client.MarkAttendanceInput{EmployeeID: *employee, Date: *date, Status: *status}
		if err := p.Mark(ctx, input); err != nil {
			return err
		}
	case *update != 0:
		rec, ok := findRecord(p, *update)
		if !ok {
			return fmt.Errorf("attendance record %d not in the loaded list", *update)
		}
		p.BeginEdit(rec)
		if err := p.SaveRecord(ctx, client.UpdateAttendanceInput{Date: *date, Status: *status}); err != nil {
			return err
		}
	case *del != 0:
		rec, ok := findRecord(p, *del)
		if !ok {
			return fmt.Errorf("attendance record %d not in the loaded list", *del)
		}
		p.BeginDelete(rec)
		fmt.Printf("deleting record for %s on %s\n", rec.EmployeeName, rec.Date)
		p.ConfirmDelete(ctx)
	}
	printToast(p.Toasts)

	p.SetPage(*page)
	rows := p.Rows()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tEMPLOYEE\tCODE\tSTATUS")
	for _, rec := range rows.Visible {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", rec.ID, rec.Date, rec.EmployeeName, rec.EmployeeCode, rec.Status)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("page %d of %d\n", rows.Page, rows.TotalPages)
	return nil
}

func findRecord(p *controller.AttendancePage, id int64) (client.AttendanceRecord, bool) {
	for page := 1; ; page++ {
		p.SetPage(page)
		rows := p.Rows()
		for _, rec := range rows.Visible {
			if rec.ID == id {
				return rec, true
			}
		}
		if page >= rows.TotalPages {
			return client.AttendanceRecord{}, false
		}
	}
}

func runDashboard(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	page := fs.Int("page", 1, "summary page to display")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p := controller.NewDashboardPage(api, nil)
	p.Init(ctx)
	if msg := p.LoadError(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	stats := p.Stats()
	fmt.Printf("Total employees: %d\n", stats.TotalEmployees)
	fmt.Printf("Present today:   %d\n", stats.PresentToday)
	fmt.Printf("Absent today:    %d\n", stats.AbsentToday)
	fmt.Printf("Attendance rate: %s%%\n\n", p.AttendanceRate())

	p.SetPage(*page)
	rows := p.SummaryRows()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tPRESENT\tABSENT\tTOTAL\tRATE")
	for _, row := range rows.Visible {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s%%\n",
			row.EmployeeID, row.EmployeeName, row.TotalPresentDays, row.TotalAbsentDays, row.TotalDays, controller.RowPercent(row))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("page %d of %d\n", rows.Page, rows.TotalPages)
	return nil
}

func printToast(t *toast.Toaster) {
	if current := t.Current(); current != nil {
		fmt.Printf("[%s] %s\n", current.Severity, current.Message)
	}
}
