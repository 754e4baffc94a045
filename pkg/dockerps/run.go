package dockerps

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/arthur-debert/zshboot/pkg/logging"
	"github.com/arthur-debert/zshboot/pkg/types"
	"github.com/rs/zerolog"
)

// Usage is printed for -h and --help
const Usage = `Usage: dockerps [--compose] [-h|--help] [docker ps args...]

Lists containers as an aligned table of NAMES, PORTS and STATUS.

  --compose   list services of the current compose project (docker compose ps)
  -h, --help  show this help

Any other argument is passed to the listing command unchanged, e.g.
  dockerps -a
  dockerps --compose --all
`

// Lister lists containers and prints the table
type Lister struct {
	Runner types.Runner
	Out    io.Writer
	Styles Styles
	Logger zerolog.Logger
}

// NewLister creates a lister logging as the dockerps component
func NewLister(r types.Runner, out io.Writer, s Styles) *Lister {
	return &Lister{Runner: r, Out: out, Styles: s, Logger: logging.GetLogger("dockerps")}
}

// Run parses args and prints usage or the container table
func (l *Lister) Run(ctx context.Context, args []string) error {
	inv := ParseArgs(args)
	if inv.Help {
		_, err := fmt.Fprint(l.Out, Usage)
		return err
	}

	rows, err := l.List(ctx, inv)
	if err != nil {
		return err
	}
	return Render(l.Out, rows, l.Styles)
}

// List runs the listing command of inv and parses its rows
func (l *Lister) List(ctx context.Context, inv Invocation) ([]Row, error) {
	if _, err := l.Runner.LookPath(Runtime); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuntimeUnavailable, "%s is not installed or not on PATH", Runtime).
			AsFatal()
	}

	l.Logger.Debug().Str("command", inv.CommandLine()).Msg("Listing containers")
	out, err := l.Runner.Output(ctx, Runtime, inv.Variant.Args(inv.Extra)...)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrListing, "%s failed", inv.CommandLine()).
			WithDetail("variant", inv.Variant.String()).
			AsFatal()
	}
	return ParseRows(string(out)), nil
}
