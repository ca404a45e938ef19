// Package loader manages the loading/ready/failed lifecycle of a fetched
// resource. A Resource is cooperative single-goroutine state: drive it from
// one goroutine (the UI loop) and observe transitions via the callback.
package loader

import "context"

type State int

const (
	Loading State = iota
	Ready
	Failed
)

const fallbackMessage = "something went wrong"

// Resource runs a zero-argument fetch and tracks its outcome. Refetch is
// re-entrant and does not de-duplicate: every call issues a new fetch and the
// last one to finish owns the state.
type Resource[T any] struct {
	fetch    func(ctx context.Context) (T, error)
	onChange func()

	state   State
	data    T
	errText string

	deps    []string
	depsSet bool
}

// New creates a resource in the Loading state. onChange fires after every
// state transition; it may be nil.
func New[T any](fetch func(ctx context.Context) (T, error), onChange func()) *Resource[T] {
	return &Resource[T]{fetch: fetch, onChange: onChange, state: Loading}
}

func (r *Resource[T]) notify() {
	if r.onChange != nil {
		r.onChange()
	}
}

// Refetch restarts the lifecycle: Loading, then Ready with the fetched data
// or Failed with a non-empty message.
func (r *Resource[T]) Refetch(ctx context.Context) {
	r.state = Loading
	r.errText = ""
	r.notify()

	data, err := r.fetch(ctx)
	if err != nil {
		r.state = Failed
		r.errText = err.Error()
		if r.errText == "" {
			r.errText = fallbackMessage
		}
		r.notify()
		return
	}

	r.state = Ready
	r.data = data
	r.notify()
}

// SetDeps records the dependency values that gate automatic refetching. The
// first call is the mount fetch; later calls fetch only when a value changed.
func (r *Resource[T]) SetDeps(ctx context.Context, deps ...string) {
	if r.depsSet && equal(r.deps, deps) {
		return
	}
	r.deps = append([]string(nil), deps...)
	r.depsSet = true
	r.Refetch(ctx)
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (r *Resource[T]) State() State { return r.state }

func (r *Resource[T]) Loading() bool { return r.state == Loading }

// Data is only meaningful in the Ready state.
func (r *Resource[T]) Data() T { return r.data }

// Err returns the failure message, empty unless Failed.
func (r *Resource[T]) Err() string { return r.errText }
