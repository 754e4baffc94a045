package config

import (
	"time"

	"github.com/arthur-debert/zshboot/pkg/elevation"
	"github.com/arthur-debert/zshboot/pkg/paths"
	"github.com/pelletier/go-toml/v2"
)

// Log holds logging configuration
type Log struct {
	Level string `koanf:"level" toml:"level"`
}

// Sync holds rc-file synchronisation settings
type Sync struct {
	RemoteURL string        `koanf:"remote_url" toml:"remote_url"`
	Timeout   time.Duration `koanf:"timeout" toml:"timeout"`
	// Force applies a remote update automatically during sync-check
	Force bool `koanf:"force" toml:"force"`
}

// Shell holds what `zshboot init` emits
type Shell struct {
	Editor    string            `koanf:"editor" toml:"editor"`
	SSHEditor string            `koanf:"ssh_editor" toml:"ssh_editor"`
	Theme     string            `koanf:"theme" toml:"theme"`
	Plugins   []string          `koanf:"plugins" toml:"plugins"`
	Aliases   map[string]string `koanf:"aliases" toml:"aliases"`
}

// CargoTool maps a crate to the binary it provides
type CargoTool struct {
	Crate  string `koanf:"crate" toml:"crate"`
	Binary string `koanf:"binary" toml:"binary"`
}

// Plugin is a framework plugin cloned from git
type Plugin struct {
	Name string `koanf:"name" toml:"name"`
	Repo string `koanf:"repo" toml:"repo"`
}

// Bootstrap holds the baseline the orchestrator converges to
type Bootstrap struct {
	RequiredCommands   []string    `koanf:"required_commands" toml:"required_commands"`
	FrameworkInstaller string      `koanf:"framework_installer" toml:"framework_installer"`
	RustupInstaller    string      `koanf:"rustup_installer" toml:"rustup_installer"`
	BinstallInstaller  string      `koanf:"binstall_installer" toml:"binstall_installer"`
	DockerInstaller    string      `koanf:"docker_installer" toml:"docker_installer"`
	FzfRepo            string      `koanf:"fzf_repo" toml:"fzf_repo"`
	CargoTools         []CargoTool `koanf:"cargo_tools" toml:"cargo_tools"`
	Plugins            []Plugin    `koanf:"plugins" toml:"plugins"`
}

// Config is the main configuration structure
type Config struct {
	Log       Log       `koanf:"log" toml:"log"`
	Sync      Sync      `koanf:"sync" toml:"sync"`
	Shell     Shell     `koanf:"shell" toml:"shell"`
	Bootstrap Bootstrap `koanf:"bootstrap" toml:"bootstrap"`
}

// Runtime carries the facts about the current process that are decided
// once and never re-evaluated during a run.
type Runtime struct {
	Paths     paths.Paths
	SSH       bool
	Elevation elevation.Mode
}

// Editor returns the editor to export for this session
func (c *Config) Editor(rt Runtime) string {
	if rt.SSH && c.Shell.SSHEditor != "" {
		return c.Shell.SSHEditor
	}
	return c.Shell.Editor
}

// MarshalTOML renders the effective configuration
func (c *Config) MarshalTOML() ([]byte, error) {
	type tomlSync struct {
		RemoteURL string `toml:"remote_url"`
		Timeout   string `toml:"timeout"`
		Force     bool   `toml:"force"`
	}
	out := struct {
		Log       Log       `toml:"log"`
		Sync      tomlSync  `toml:"sync"`
		Shell     Shell     `toml:"shell"`
		Bootstrap Bootstrap `toml:"bootstrap"`
	}{
		Log:       c.Log,
		Sync:      tomlSync{RemoteURL: c.Sync.RemoteURL, Timeout: c.Sync.Timeout.String(), Force: c.Sync.Force},
		Shell:     c.Shell,
		Bootstrap: c.Bootstrap,
	}
	return toml.Marshal(out)
}
