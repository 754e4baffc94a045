package bootstrap

import (
	"path/filepath"

	"github.com/arthur-debert/zshboot/pkg/types"
)

// Predicate is an existence test. Implementations must not change any state.
type Predicate func() bool

// Checker builds existence predicates against a runner and filesystem
type Checker struct {
	Runner types.Runner
	FS     types.FS
	// ExtraPath lists directories searched after PATH, for binaries that a
	// fresh install placed outside of the current PATH (e.g. ~/.cargo/bin).
	ExtraPath []string
}

// CommandExists reports whether name resolves on PATH or ExtraPath
func (c Checker) CommandExists(name string) bool {
	if _, err := c.Runner.LookPath(name); err == nil {
		return true
	}
	for _, dir := range c.ExtraPath {
		info, err := c.FS.Stat(filepath.Join(dir, name))
		if err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

// DirExists reports whether path is an existing directory
func (c Checker) DirExists(path string) bool {
	info, err := c.FS.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists reports whether path is an existing regular file
func (c Checker) FileExists(path string) bool {
	info, err := c.FS.Stat(path)
	return err == nil && !info.IsDir()
}

// Command returns a Predicate for CommandExists
func (c Checker) Command(name string) Predicate {
	return func() bool { return c.CommandExists(name) }
}

// Dir returns a Predicate for DirExists
func (c Checker) Dir(path string) Predicate {
	return func() bool { return c.DirExists(path) }
}
