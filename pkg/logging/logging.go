package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Sink selects how log records are formatted on the console
type Sink int

const (
	// SinkConsole renders human readable colored lines
	SinkConsole Sink = iota
	// SinkJSON writes one JSON object per record
	SinkJSON
)

// DetectSink picks the console sink for terminals and JSON otherwise.
// It is called once at startup.
func DetectSink(f *os.File) Sink {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return SinkConsole
	}
	return SinkJSON
}

// Options configures SetupLogger
type Options struct {
	Level   Level
	Sink    Sink
	Out     io.Writer // defaults to os.Stderr
	NoColor bool
	LogFile string // optional, appended to when set
}

// SetupLogger configures the global logger. The returned closer releases the
// log file, if one was opened.
func SetupLogger(opts Options) io.Closer {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	var console io.Writer = out
	if opts.Sink == SinkConsole {
		console = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
			NoColor:    opts.NoColor,
		}
	}

	writers := []io.Writer{console}
	var closer io.Closer = nopCloser{}
	var fileErr error
	if opts.LogFile != "" {
		file, err := setupLogFile(opts.LogFile)
		if err == nil {
			writers = append(writers, file)
			closer = file
		}
		fileErr = err
	}

	zerolog.SetGlobalLevel(opts.Level.zerolog())
	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	if opts.Level == LevelDebug {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", opts.LogFile).Msg("Failed to open log file, logging to console only")
	}

	log.Debug().Str("level", opts.Level.String()).Str("logFile", opts.LogFile).Msg("Logger initialized")
	return closer
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}

func setupLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
