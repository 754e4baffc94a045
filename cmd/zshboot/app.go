package zshboot

import (
	"io"
	"os"

	"github.com/arthur-debert/zshboot/pkg/bootstrap"
	"github.com/arthur-debert/zshboot/pkg/config"
	"github.com/arthur-debert/zshboot/pkg/dockerps"
	"github.com/arthur-debert/zshboot/pkg/elevation"
	"github.com/arthur-debert/zshboot/pkg/execx"
	"github.com/arthur-debert/zshboot/pkg/filesystem"
	"github.com/arthur-debert/zshboot/pkg/logging"
	"github.com/arthur-debert/zshboot/pkg/paths"
	"github.com/arthur-debert/zshboot/pkg/rcsync"
	"github.com/arthur-debert/zshboot/pkg/style"
	"github.com/arthur-debert/zshboot/pkg/types"
	"github.com/spf13/cobra"
)

// Deps are the outside-world seams of the CLI. Zero values select the real
// implementations.
type Deps struct {
	Runner  types.Runner
	FS      types.FS
	Fetcher rcsync.Fetcher
	Differ  *rcsync.Differ
	Getenv  func(string) string
	// Home overrides $HOME
	Home string
	// EUID overrides the effective uid used for the elevation decision
	EUID *int
}

func (d Deps) withDefaults() Deps {
	if d.Runner == nil {
		d.Runner = execx.NewOSRunner()
	}
	if d.FS == nil {
		d.FS = filesystem.NewOS()
	}
	if d.Getenv == nil {
		d.Getenv = os.Getenv
	}
	if d.Differ == nil {
		d.Differ = rcsync.NewDiffer(d.Runner)
	}
	return d
}

// globalFlags are bound on the root command
type globalFlags struct {
	verbosity  int
	configFile string
	noColor    bool
}

// App is assembled once before any subcommand runs and is read-only
// afterwards
type App struct {
	Config  *config.Config
	Runtime config.Runtime
	Runner  types.Runner
	FS      types.FS
	NoColor bool

	deps      Deps
	logCloser io.Closer
}

func newApp(cmd *cobra.Command, deps Deps, flags *globalFlags) (*App, error) {
	p, err := paths.New(deps.Home)
	if err != nil {
		return nil, err
	}

	cfgFile := flags.configFile
	if cfgFile == "" {
		cfgFile = p.ConfigFile()
	}
	cfg, err := config.Load(cfgFile, deps.Getenv)
	if err != nil {
		return nil, err
	}

	noColor := flags.noColor || deps.Getenv("NO_COLOR") != ""
	app := &App{Config: cfg, Runner: deps.Runner, FS: deps.FS, NoColor: noColor, deps: deps}
	app.setupLogging(cmd, p, flags.verbosity)

	probe := elevation.CurrentProbe(deps.Runner.LookPath)
	if deps.EUID != nil {
		probe.EUID = *deps.EUID
	}
	app.Runtime = config.Runtime{
		Paths:     p,
		SSH:       config.IsSSHSession(deps.Getenv),
		Elevation: elevation.Decide(probe),
	}

	log := logging.GetLogger("cmd")
	log.Debug().
		Str("command", cmd.CommandPath()).
		Str("config", cfgFile).
		Bool("ssh", app.Runtime.SSH).
		Str("elevation", app.Runtime.Elevation.String()).
		Msg("Command started")
	return app, nil
}

func (a *App) setupLogging(cmd *cobra.Command, p paths.Paths, verbosity int) {
	level, err := logging.ParseLevel(a.Config.Log.Level)
	level = logging.FromVerbosity(level, verbosity)

	sink := logging.SinkJSON
	colorless := a.NoColor
	if f, ok := cmd.ErrOrStderr().(*os.File); ok {
		sink = logging.DetectSink(f)
	} else {
		colorless = true
	}

	a.logCloser = logging.SetupLogger(logging.Options{
		Level:   level,
		Sink:    sink,
		Out:     cmd.ErrOrStderr(),
		NoColor: colorless,
		LogFile: p.LogFilePath(),
	})
	if err != nil {
		log := logging.GetLogger("cmd")
		log.Warn().Err(err).Msg("Ignoring log level")
	}
}

// Close releases the log file
func (a *App) Close() error {
	if a == nil || a.logCloser == nil {
		return nil
	}
	err := a.logCloser.Close()
	a.logCloser = nil
	return err
}

// Theme returns a theme for w honoring --no-color and terminal detection
func (a *App) Theme(w io.Writer) *style.Theme {
	return style.NewTheme(w, a.colorless(w))
}

func (a *App) colorless(w io.Writer) bool {
	if a.NoColor {
		return true
	}
	f, ok := w.(*os.File)
	return !ok || !isTerminal(f)
}

// Syncer wires the rc synchronisation flows
func (a *App) Syncer(out io.Writer) *rcsync.Syncer {
	fetcher := a.deps.Fetcher
	if fetcher == nil {
		fetcher = rcsync.NewHTTPFetcher(a.Config.Sync.RemoteURL, a.Config.Sync.Timeout)
	}
	s := rcsync.New(fetcher, rcsync.Store{FS: a.FS, Paths: a.Runtime.Paths}, a.deps.Differ)
	s.Force = a.Config.Sync.Force
	s.Out = out
	s.Markup = style.NewMarkupParser(a.Theme(out))
	return s
}

// BootstrapEnv returns what the default steps need
func (a *App) BootstrapEnv() bootstrap.Env {
	return bootstrap.Env{Config: a.Config, Runtime: a.Runtime, Runner: a.Runner, FS: a.FS}
}

// Lister wires dockerps to w
func (a *App) Lister(w io.Writer) *dockerps.Lister {
	return dockerps.NewLister(a.Runner, w, dockerps.NewStyles(a.Theme(w)))
}
