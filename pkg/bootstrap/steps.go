package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/arthur-debert/zshboot/pkg/config"
	"github.com/arthur-debert/zshboot/pkg/elevation"
	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/arthur-debert/zshboot/pkg/execx"
	"github.com/arthur-debert/zshboot/pkg/types"
)

// Env is everything the default steps need
type Env struct {
	Config  *config.Config
	Runtime config.Runtime
	Runner  types.Runner
	FS      types.FS
}

// Checker returns the checker used by the default steps
func (e Env) Checker() Checker {
	p := e.Runtime.Paths
	return Checker{
		Runner:    e.Runner,
		FS:        e.FS,
		ExtraPath: []string{p.CargoBin(), filepath.Join(p.FzfDir(), "bin"), p.LocalBin()},
	}
}

// DefaultSteps returns the baseline in dependency order: required commands,
// the shell framework and its plugins, then the independent tools.
func DefaultSteps(env Env) []Step {
	c := env.Checker()
	pm, _ := DetectPackageManager(c)

	var steps []Step
	steps = append(steps, requiredSteps(env, c, pm)...)
	steps = append(steps, frameworkStep(env, c))
	steps = append(steps, pluginSteps(env, c)...)
	steps = append(steps,
		dockerStep(env, c),
		rustupStep(env, c),
		binstallStep(env, c),
	)
	steps = append(steps, cargoSteps(env, c)...)
	steps = append(steps, fzfStep(env, c))
	return steps
}

func requiredSteps(env Env, c Checker, pm PackageManager) []Step {
	var steps []Step
	for _, name := range env.Config.Bootstrap.RequiredCommands {
		steps = append(steps, Step{
			Name:        "required:" + name,
			Description: fmt.Sprintf("%s via %s", name, orNone(pm.Name)),
			Check:       c.Command(name),
			Install:     pm.Installer(env.Runner, env.Runtime.Elevation, name),
			Fatal:       true,
		})
	}
	return steps
}

func frameworkStep(env Env, c Checker) Step {
	p := env.Runtime.Paths
	url := env.Config.Bootstrap.FrameworkInstaller
	return Step{
		Name:        "framework",
		Description: "oh-my-zsh in " + p.FrameworkDir(),
		Check:       c.Dir(p.FrameworkDir()),
		Install: func(ctx context.Context) error {
			script := fmt.Sprintf("curl -fsSL %s | RUNZSH=no CHSH=no KEEP_ZSHRC=yes sh -s -- --unattended", execx.Quote(url))
			return execx.Shell(ctx, env.Runner, script)
		},
		Verify: func(ctx context.Context) error {
			entry := p.FrameworkScript()
			if !c.FileExists(entry) {
				return errors.Newf(errors.ErrFrameworkLoad, "framework entry script %s is missing", entry).AsFatal()
			}
			if err := env.Runner.Run(ctx, "zsh", "-n", entry); err != nil {
				return errors.Wrapf(err, errors.ErrFrameworkLoad, "framework entry script %s does not load", entry).AsFatal()
			}
			return nil
		},
		Fatal: true,
	}
}

func pluginSteps(env Env, c Checker) []Step {
	p := env.Runtime.Paths
	var steps []Step
	for _, plugin := range env.Config.Bootstrap.Plugins {
		plugin := plugin
		dir := p.FrameworkPluginDir(plugin.Name)
		steps = append(steps, Step{
			Name:        "plugin:" + plugin.Name,
			Description: plugin.Repo,
			Check:       c.Dir(dir),
			Install: func(ctx context.Context) error {
				return env.Runner.Run(ctx, "git", "clone", "--depth", "1", plugin.Repo, dir)
			},
		})
	}
	return steps
}

func dockerStep(env Env, c Checker) Step {
	url := env.Config.Bootstrap.DockerInstaller
	return Step{
		Name:        "docker",
		Description: "container runtime",
		Check:       c.Command("docker"),
		Install: func(ctx context.Context) error {
			sh := "sh"
			if env.Runtime.Elevation == elevation.Sudo {
				sh = "sudo sh"
			}
			return execx.Shell(ctx, env.Runner, fmt.Sprintf("curl -fsSL %s | %s", execx.Quote(url), sh))
		},
	}
}

func rustupStep(env Env, c Checker) Step {
	url := env.Config.Bootstrap.RustupInstaller
	return Step{
		Name:        "rustup",
		Description: "Rust toolchain",
		Check:       c.Command("cargo"),
		Install: func(ctx context.Context) error {
			script := fmt.Sprintf("curl --proto '=https' --tlsv1.2 -sSf %s | sh -s -- -y --no-modify-path", execx.Quote(url))
			return execx.Shell(ctx, env.Runner, script)
		},
	}
}

func binstallStep(env Env, c Checker) Step {
	url := env.Config.Bootstrap.BinstallInstaller
	return Step{
		Name:        "cargo-binstall",
		Description: "binary installer for cargo crates",
		Check:       c.Command("cargo-binstall"),
		Install: func(ctx context.Context) error {
			script := fmt.Sprintf("curl -L --proto '=https' --tlsv1.2 -sSf %s | bash", execx.Quote(url))
			return execx.Shell(ctx, env.Runner, script)
		},
	}
}

func cargoSteps(env Env, c Checker) []Step {
	var steps []Step
	for _, tool := range env.Config.Bootstrap.CargoTools {
		tool := tool
		steps = append(steps, Step{
			Name:        "cargo:" + tool.Crate,
			Description: "provides " + tool.Binary,
			Check:       c.Command(tool.Binary),
			Install: func(ctx context.Context) error {
				cargo := cargoBinary(c, env.Runtime.Paths.CargoBin(), "cargo")
				if c.CommandExists("cargo-binstall") {
					return env.Runner.Run(ctx, cargo, "binstall", "-y", tool.Crate)
				}
				return env.Runner.Run(ctx, cargo, "install", "--locked", tool.Crate)
			},
		})
	}
	return steps
}

func fzfStep(env Env, c Checker) Step {
	p := env.Runtime.Paths
	dir := p.FzfDir()
	sentinel := p.FzfSentinel()
	return Step{
		Name:        "fzf",
		Description: "fuzzy finder in " + dir,
		Check: func() bool {
			return c.CommandExists("fzf") || (c.DirExists(dir) && c.FileExists(sentinel))
		},
		Install: func(ctx context.Context) error {
			if !c.DirExists(dir) {
				if err := env.Runner.Run(ctx, "git", "clone", "--depth", "1", env.Config.Bootstrap.FzfRepo, dir); err != nil {
					return err
				}
			}
			if err := env.Runner.Run(ctx, filepath.Join(dir, "install"), "--all", "--no-update-rc"); err != nil {
				return err
			}
			stamp := fmt.Sprintf("installed|%s\n", time.Now().Format(time.RFC3339))
			if err := env.FS.WriteFile(sentinel, []byte(stamp), 0644); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to write fzf sentinel")
			}
			return nil
		},
	}
}

// cargoBinary prefers cargo on PATH and falls back to the rustup location
func cargoBinary(c Checker, cargoBin, name string) string {
	if _, err := c.Runner.LookPath(name); err == nil {
		return name
	}
	return filepath.Join(cargoBin, name)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
