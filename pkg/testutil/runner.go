package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/arthur-debert/zshboot/pkg/types"
	"github.com/stretchr/testify/mock"
)

// ErrNotOnPath is returned by FakeRunner.LookPath for absent binaries
var ErrNotOnPath = errors.New("executable file not found in $PATH")

// FakeRunner is a scriptable types.Runner. Binaries listed in Installed
// resolve on LookPath; OnRun can simulate the side effects of a command.
type FakeRunner struct {
	mu        sync.Mutex
	Installed map[string]bool
	Outputs   map[string][]byte
	OnRun     func(name string, args []string) error
	calls     []string
	lookups   []string
}

// NewFakeRunner creates a runner where the given binaries are present
func NewFakeRunner(installed ...string) *FakeRunner {
	f := &FakeRunner{Installed: map[string]bool{}, Outputs: map[string][]byte{}}
	for _, name := range installed {
		f.Installed[name] = true
	}
	return f
}

// Install marks a binary as present from now on
func (f *FakeRunner) Install(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Installed[name] = true
}

// LookPath implements types.Runner
func (f *FakeRunner) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups = append(f.lookups, name)
	if f.Installed[name] {
		return "/usr/bin/" + name, nil
	}
	return "", fmt.Errorf("%s: %w", name, ErrNotOnPath)
}

// Run implements types.Runner
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.record(name, args)
	if f.OnRun != nil {
		return f.OnRun(name, args)
	}
	return nil
}

// Output implements types.Runner. Outputs is keyed by the joined command line.
func (f *FakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	line := f.record(name, args)
	if f.OnRun != nil {
		if err := f.OnRun(name, args); err != nil {
			return nil, err
		}
	}
	return f.Outputs[line], nil
}

// Calls returns every executed command line in order
func (f *FakeRunner) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Lookups returns every binary passed to LookPath in order
func (f *FakeRunner) Lookups() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.lookups...)
}

func (f *FakeRunner) record(name string, args []string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	line := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, line)
	return line
}

// MockRunner is a testify mock for strict expectations on commands
type MockRunner struct {
	mock.Mock
}

// LookPath implements types.Runner
func (m *MockRunner) LookPath(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

// Run implements types.Runner
func (m *MockRunner) Run(ctx context.Context, name string, args ...string) error {
	ret := m.Called(ctx, name, args)
	return ret.Error(0)
}

// Output implements types.Runner
func (m *MockRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	ret := m.Called(ctx, name, args)
	var out []byte
	if v := ret.Get(0); v != nil {
		out = v.([]byte)
	}
	return out, ret.Error(1)
}

var (
	_ types.Runner = (*FakeRunner)(nil)
	_ types.Runner = (*MockRunner)(nil)
)
