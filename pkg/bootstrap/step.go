package bootstrap

import (
	"context"
	"strings"
)

// Action performs an install or verification
type Action func(ctx context.Context) error

// Step is one tool requirement
type Step struct {
	// Name identifies the step, "group:item" for generated steps
	Name string
	// Description is shown in reports
	Description string
	// Check is satisfied when nothing needs to be done
	Check Predicate
	// Install runs only when Check fails
	Install Action
	// Verify, when set, runs after the step is satisfied or installed.
	// A Verify failure is treated like an install failure.
	Verify Action
	// Fatal steps abort the run when they fail
	Fatal bool
}

// Group returns the part of the name before ':' (or the whole name)
func (s Step) Group() string {
	if i := strings.IndexByte(s.Name, ':'); i >= 0 {
		return s.Name[:i]
	}
	return s.Name
}

// Outcome records what happened to a step
type Outcome int

const (
	// Satisfied means the check passed and nothing was installed
	Satisfied Outcome = iota
	// Installed means the install action ran and succeeded
	Installed
	// Planned means the check failed during a dry run
	Planned
	// Failed means install or verify failed
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Satisfied:
		return "ok"
	case Installed:
		return "installed"
	case Planned:
		return "missing"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// MarshalText lets reports render outcomes by name
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result is the outcome of a single step
type Result struct {
	Step    string  `json:"step" yaml:"step"`
	Outcome Outcome `json:"outcome" yaml:"outcome"`
	Fatal   bool    `json:"fatal,omitempty" yaml:"fatal,omitempty"`
	Error   string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report collects the results of a run in step order
type Report struct {
	Results []Result `json:"results" yaml:"results"`
	DryRun  bool     `json:"dry_run" yaml:"dry_run"`
}

// Count returns how many results have the given outcome
func (r Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}
