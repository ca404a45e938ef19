package toast

import "testing"

func TestShowReplacesCurrent(t *testing.T) {
	toaster := New()
	toaster.ShowSuccess("first")
	toaster.ShowError("second")

	current := toaster.Current()
	if current == nil {
		t.Fatal("expected a visible toast")
	}
	if current.Message != "second" || current.Severity != Error {
		t.Fatalf("got %+v, want the second message", current)
	}
}

func TestHideClears(t *testing.T) {
	toaster := New()
	toaster.ShowInfo("heads up")
	toaster.Hide()
	if toaster.Current() != nil {
		t.Fatal("expected no visible toast after Hide")
	}
}

func TestConvenienceSeverities(t *testing.T) {
	tests := []struct {
		name string
		show func(*Toaster)
		want Severity
	}{
		{name: "success", show: func(tr *Toaster) { tr.ShowSuccess("m") }, want: Success},
		{name: "error", show: func(tr *Toaster) { tr.ShowError("m") }, want: Error},
		{name: "info", show: func(tr *Toaster) { tr.ShowInfo("m") }, want: Info},
		{name: "warning", show: func(tr *Toaster) { tr.ShowWarning("m") }, want: Warning},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			toaster := New()
			tc.show(toaster)
			if got := toaster.Current().Severity; got != tc.want {
				t.Fatalf("severity = %q, want %q", got, tc.want)
			}
		})
	}
}
