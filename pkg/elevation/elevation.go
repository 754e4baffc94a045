// Package elevation decides, once per run, whether privileged commands are
// prefixed with sudo.
package elevation

import (
	"os"
)

// Mode is the cached privilege decision
type Mode int

const (
	// AsIs runs commands unchanged
	AsIs Mode = iota
	// Sudo prefixes privileged commands with sudo
	Sudo
)

// SudoBinary is the elevation mechanism looked up on PATH
const SudoBinary = "sudo"

func (m Mode) String() string {
	if m == Sudo {
		return "sudo"
	}
	return "as-is"
}

// Probe reports the facts the decision is made from
type Probe struct {
	// EUID is the effective user id of the process
	EUID int
	// LookPath resolves executables on PATH
	LookPath func(string) (string, error)
}

// Decide returns Sudo only when the process is unprivileged and sudo exists
func Decide(p Probe) Mode {
	if p.EUID == 0 {
		return AsIs
	}
	if p.LookPath == nil {
		return AsIs
	}
	if _, err := p.LookPath(SudoBinary); err != nil {
		return AsIs
	}
	return Sudo
}

// CurrentProbe inspects the running process
func CurrentProbe(lookPath func(string) (string, error)) Probe {
	return Probe{EUID: os.Geteuid(), LookPath: lookPath}
}

// Wrap returns the command line for a privileged invocation under mode m
func (m Mode) Wrap(name string, args ...string) (string, []string) {
	if m == Sudo {
		return SudoBinary, append([]string{name}, args...)
	}
	return name, args
}
