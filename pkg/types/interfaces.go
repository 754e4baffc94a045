package types

import (
	"context"
	"io/fs"
)

// FS abstracts the filesystem calls zshboot makes so tests can run against
// an in-memory tree.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Remove(name string) error
	Rename(oldpath, newpath string) error
}

// Runner executes external commands.
type Runner interface {
	// LookPath reports the resolved path of an executable on PATH.
	LookPath(name string) (string, error)

	// Run executes a command streaming its output to the process stdio.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes a command and returns its stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}
