package rcsync

import (
	"context"
	stderrors "errors"
	"io"
	"path/filepath"

	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/arthur-debert/zshboot/pkg/execx"
	"github.com/arthur-debert/zshboot/pkg/types"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"
)

// Document is one side of a diff
type Document struct {
	Name    string
	Content []byte
}

// Tool is an external diff program
type Tool struct {
	Name string
	Args []string
}

// DefaultTools in order of preference
var DefaultTools = []Tool{
	{Name: "delta"},
	{Name: "colordiff", Args: []string{"-u"}},
	{Name: "diff", Args: []string{"-u"}},
}

// Differ prints diffs with the best available tool, falling back to a
// built-in unified diff when none is installed
type Differ struct {
	Runner types.Runner
	// Temp holds the files handed to external tools
	Temp  afero.Fs
	Tools []Tool
}

// NewDiffer uses the host filesystem for temp files
func NewDiffer(r types.Runner) *Differ {
	return &Differ{Runner: r, Temp: afero.NewOsFs(), Tools: DefaultTools}
}

// Pick returns the first installed tool
func (d *Differ) Pick() (Tool, bool) {
	if d.Runner == nil {
		return Tool{}, false
	}
	for _, t := range d.Tools {
		if _, err := d.Runner.LookPath(t.Name); err == nil {
			return t, true
		}
	}
	return Tool{}, false
}

// Diff writes the difference between a and b to w
func (d *Differ) Diff(ctx context.Context, w io.Writer, a, b Document) error {
	tool, ok := d.Pick()
	if !ok {
		return Unified(w, a, b)
	}

	dir, err := afero.TempDir(d.Temp, "", "zshboot-diff-")
	if err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to create temp dir for diff")
	}
	defer func() { _ = d.Temp.RemoveAll(dir) }()

	left := filepath.Join(dir, "local")
	right := filepath.Join(dir, "remote")
	if err := afero.WriteFile(d.Temp, left, a.Content, 0600); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write diff input")
	}
	if err := afero.WriteFile(d.Temp, right, b.Content, 0600); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write diff input")
	}

	args := append(append([]string(nil), tool.Args...), left, right)
	out, err := d.Runner.Output(ctx, tool.Name, args...)
	if _, werr := w.Write(out); werr != nil {
		return errors.Wrap(werr, errors.ErrDiff, "failed to write diff")
	}
	// diff tools exit 1 when the inputs differ
	var exit *execx.ExitError
	if stderrors.As(err, &exit) && exit.Code == 1 {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrDiff, "%s failed", tool.Name)
	}
	return nil
}

// Unified writes a unified diff of a and b with three lines of context
func Unified(w io.Writer, a, b Document) error {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a.Content)),
		B:        difflib.SplitLines(string(b.Content)),
		FromFile: a.Name,
		ToFile:   b.Name,
		Context:  3,
	}
	if err := difflib.WriteUnifiedDiff(w, diff); err != nil {
		return errors.Wrap(err, errors.ErrDiff, "failed to write diff")
	}
	return nil
}
