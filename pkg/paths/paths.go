// Package paths provides centralized path handling for zshboot.
// Everything zshboot persists lives either under the user's home directory
// (the rc file and its sync records) or under the XDG state/config dirs
// (log file and optional config file).
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/zshboot/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvStateDir overrides the XDG state directory for zshboot
	EnvStateDir = "ZSHBOOT_STATE_DIR"

	// EnvConfigDir overrides the XDG config directory for zshboot
	EnvConfigDir = "ZSHBOOT_CONFIG_DIR"
)

// File and directory names relative to the home directory.
// These are part of the on-disk contract with existing shells and are not
// configurable.
const (
	AppDirName         = "zshboot"
	RCFileName         = ".zshrc"
	LocalOverrideName  = ".zshrc.local"
	LocalHashFileName  = ".zshrc.local_hash"
	RemoteHashFileName = ".zshrc.remote_hash"
	FzfSentinelName    = ".fzf_install_done"
	FrameworkDirName   = ".oh-my-zsh"
	FzfDirName         = ".fzf"
	CargoDirName       = ".cargo"
	ConfigFileName     = "config.toml"
	LogFileName        = "zshboot.log"
)

// Paths resolves every location zshboot reads or writes
type Paths struct {
	home      string
	stateDir  string
	configDir string
}

// New creates a Paths rooted at home. If home is empty it is taken from $HOME.
func New(home string) (Paths, error) {
	if home == "" {
		home = os.Getenv(EnvHome)
	}
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, errors.Wrap(err, errors.ErrNotFound, "failed to determine home directory")
		}
		home = h
	}

	p := Paths{home: filepath.Clean(home)}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = p.Expand(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = p.Expand(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	return p, nil
}

// Home returns the home directory all persisted state is relative to
func (p Paths) Home() string { return p.home }

// RCFile is the managed shell rc file
func (p Paths) RCFile() string { return filepath.Join(p.home, RCFileName) }

// LocalOverride is the optional user file sourced after the managed rc
func (p Paths) LocalOverride() string { return filepath.Join(p.home, LocalOverrideName) }

// LocalHashFile records the digest of the local rc file at the last update
func (p Paths) LocalHashFile() string { return filepath.Join(p.home, LocalHashFileName) }

// RemoteHashFile records the digest of the remote rc file at the last update
func (p Paths) RemoteHashFile() string { return filepath.Join(p.home, RemoteHashFileName) }

// FzfSentinel marks that the fuzzy finder installer already ran
func (p Paths) FzfSentinel() string { return filepath.Join(p.home, FzfSentinelName) }

// FrameworkDir is the oh-my-zsh checkout
func (p Paths) FrameworkDir() string { return filepath.Join(p.home, FrameworkDirName) }

// FrameworkScript is the entry point sourced by the rc file
func (p Paths) FrameworkScript() string {
	return filepath.Join(p.FrameworkDir(), "oh-my-zsh.sh")
}

// FrameworkPluginDir is where custom framework plugins are cloned
func (p Paths) FrameworkPluginDir(name string) string {
	return filepath.Join(p.FrameworkDir(), "custom", "plugins", name)
}

// FzfDir is the fuzzy finder checkout
func (p Paths) FzfDir() string { return filepath.Join(p.home, FzfDirName) }

// CargoBin holds binaries installed by cargo and rustup
func (p Paths) CargoBin() string { return filepath.Join(p.home, CargoDirName, "bin") }

// LocalBin is the user's private bin directory
func (p Paths) LocalBin() string { return filepath.Join(p.home, ".local", "bin") }

// StateDir is zshboot's XDG state directory
func (p Paths) StateDir() string { return p.stateDir }

// LogFilePath is where every run appends its log
func (p Paths) LogFilePath() string { return filepath.Join(p.StateDir(), LogFileName) }

// ConfigDir is zshboot's XDG config directory
func (p Paths) ConfigDir() string { return p.configDir }

// ConfigFile is the optional user configuration file
func (p Paths) ConfigFile() string { return filepath.Join(p.ConfigDir(), ConfigFileName) }

// Expand replaces a leading ~ with the home directory
func (p Paths) Expand(path string) string {
	if path == "~" {
		return p.home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(p.home, path[2:])
	}
	return path
}
