// Package toast is a single-slot notification holder: at most one message is
// visible at a time and showing a new one replaces it.
package toast

type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
	Warning Severity = "warning"
)

type Toast struct {
	Message  string
	Severity Severity
}

type Toaster struct {
	current *Toast
}

func New() *Toaster {
	return &Toaster{}
}

func (t *Toaster) Show(message string, severity Severity) {
	t.current = &Toast{Message: message, Severity: severity}
}

func (t *Toaster) ShowSuccess(message string) { t.Show(message, Success) }
func (t *Toaster) ShowError(message string)   { t.Show(message, Error) }
func (t *Toaster) ShowInfo(message string)    { t.Show(message, Info) }
func (t *Toaster) ShowWarning(message string) { t.Show(message, Warning) }

func (t *Toaster) Hide() {
	t.current = nil
}

// Current returns the visible toast, or nil when none is shown.
func (t *Toaster) Current() *Toast {
	return t.current
}
