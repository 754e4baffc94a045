package logging

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Level is the ordered log verbosity understood by zshboot
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// DefaultLevel is used when nothing else is configured
const DefaultLevel = LevelWarn

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel accepts the level names case-insensitively. An empty string
// yields DefaultLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return DefaultLevel, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	}
	return DefaultLevel, fmt.Errorf("unknown log level %q (want DEBUG, INFO, WARN or ERROR)", s)
}

// FromVerbosity lowers the threshold for each -v given on the command line
func FromVerbosity(base Level, verbosity int) Level {
	l := base - Level(verbosity)
	if l < LevelDebug {
		return LevelDebug
	}
	return l
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
