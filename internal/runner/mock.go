package runner

import (
	"context"
	"strings"
	"sync"
)

// Call is one recorded invocation of MockRunner.Run.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call as a command line, e.g. "npm init -y".
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// MockRunner implements Runner for testing. It never starts a process.
type MockRunner struct {
	mu    sync.Mutex
	calls []Call

	// Errors maps a command line (see Call.String) to the error Run returns for it.
	Errors map[string]error

	// OnRun, when set, is called for every invocation before Errors is consulted.
	// A non-nil result is returned from Run.
	OnRun func(call Call) error
}

// NewMockRunner creates a MockRunner with no injected failures.
func NewMockRunner() *MockRunner {
	return &MockRunner{Errors: make(map[string]error)}
}

func (m *MockRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	call := Call{Dir: dir, Name: name, Args: append([]string(nil), args...)}

	m.mu.Lock()
	m.calls = append(m.calls, call)
	hook := m.OnRun
	injected := m.Errors[call.String()]
	m.mu.Unlock()

	if hook != nil {
		if err := hook(call); err != nil {
			return err
		}
	}
	return injected
}

// Calls returns a copy of every recorded invocation, in order.
func (m *MockRunner) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// CommandLines returns Call.String for every recorded invocation.
func (m *MockRunner) CommandLines() []string {
	calls := m.Calls()
	lines := make([]string, 0, len(calls))
	for _, c := range calls {
		lines = append(lines, c.String())
	}
	return lines
}
