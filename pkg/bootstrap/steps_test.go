package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/zshboot/pkg/config"
	"github.com/arthur-debert/zshboot/pkg/elevation"
	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/arthur-debert/zshboot/pkg/filesystem"
	"github.com/arthur-debert/zshboot/pkg/paths"
	"github.com/arthur-debert/zshboot/pkg/testutil"
	"github.com/arthur-debert/zshboot/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const home = "/home/tester"

func testEnv(t *testing.T, runner types.Runner, fsys types.FS) Env {
	t.Helper()
	p, err := paths.New(home)
	require.NoError(t, err)
	return Env{
		Config: &config.Config{Bootstrap: config.Bootstrap{
			RequiredCommands:   []string{"git", "zsh"},
			FrameworkInstaller: "https://example.test/omz.sh",
			RustupInstaller:    "https://example.test/rustup",
			BinstallInstaller:  "https://example.test/binstall.sh",
			DockerInstaller:    "https://example.test/docker",
			FzfRepo:            "https://example.test/fzf.git",
			CargoTools:         []config.CargoTool{{Crate: "ripgrep", Binary: "rg"}},
			Plugins:            []config.Plugin{{Name: "zsh-autosuggestions", Repo: "https://example.test/as"}},
		}},
		Runtime: config.Runtime{Paths: p, Elevation: elevation.Sudo},
		Runner:  runner,
		FS:      fsys,
	}
}

func stepNames(steps []Step) []string {
	var names []string
	for _, s := range steps {
		names = append(names, s.Name)
	}
	return names
}

func runQuiet(t *testing.T, steps []Step) (Report, error) {
	t.Helper()
	o := New(steps)
	o.Logger = zerolog.Nop()
	return o.Run(context.Background())
}

func TestDefaultSteps_Order(t *testing.T) {
	env := testEnv(t, testutil.NewFakeRunner(), filesystem.NewMemory())

	assert.Equal(t, []string{
		"required:git", "required:zsh",
		"framework",
		"plugin:zsh-autosuggestions",
		"docker", "rustup", "cargo-binstall",
		"cargo:ripgrep",
		"fzf",
	}, stepNames(DefaultSteps(env)))
}

func TestChecker_Idempotent(t *testing.T) {
	mem := filesystem.NewMemory()
	runner := testutil.NewFakeRunner("git")
	require.NoError(t, mem.MkdirAll(home+"/.cargo/bin", 0755))
	require.NoError(t, mem.WriteFile(home+"/.cargo/bin/rg", []byte{}, 0755))
	c := testEnv(t, runner, mem).Checker()

	for _, name := range []string{"git", "rg", "bat"} {
		first := c.CommandExists(name)
		second := c.CommandExists(name)
		assert.Equal(t, first, second, name)
	}
	assert.True(t, c.CommandExists("git"))
	assert.True(t, c.CommandExists("rg"))
	assert.False(t, c.CommandExists("bat"))

	assert.Equal(t, c.DirExists(home+"/.cargo"), c.DirExists(home+"/.cargo"))
	assert.Empty(t, runner.Calls())
}

func TestDefaultSteps_AllSatisfied(t *testing.T) {
	mem := filesystem.NewMemory()
	p := testEnv(t, nil, mem).Runtime.Paths
	require.NoError(t, mem.MkdirAll(p.FrameworkPluginDir("zsh-autosuggestions"), 0755))
	require.NoError(t, mem.WriteFile(p.FrameworkScript(), []byte("# omz"), 0644))
	require.NoError(t, mem.MkdirAll(p.FzfDir(), 0755))
	require.NoError(t, mem.WriteFile(p.FzfSentinel(), []byte("installed"), 0644))

	runner := testutil.NewFakeRunner("git", "zsh", "docker", "cargo", "cargo-binstall", "rg", "apt-get")
	report, err := runQuiet(t, DefaultSteps(testEnv(t, runner, mem)))
	require.NoError(t, err)

	assert.Equal(t, len(report.Results), report.Count(Satisfied))
	// only the framework verification runs a command
	assert.Equal(t, []string{"zsh -n " + p.FrameworkScript()}, runner.Calls())
}

func TestRequiredStep_UsesPackageManagerWithElevation(t *testing.T) {
	runner := testutil.NewFakeRunner("apt-get")
	env := testEnv(t, runner, filesystem.NewMemory())
	env.Config.Bootstrap.RequiredCommands = []string{"git"}

	steps := requiredSteps(env, env.Checker(), PackageManager{Name: "apt-get", Args: []string{"install", "-y"}, Privileged: true})
	_, err := runQuiet(t, steps)
	require.NoError(t, err)

	assert.Equal(t, []string{"sudo apt-get install -y git"}, runner.Calls())
}

func TestRequiredStep_NoPackageManagerIsFatal(t *testing.T) {
	env := testEnv(t, testutil.NewFakeRunner(), filesystem.NewMemory())

	_, err := runQuiet(t, requiredSteps(env, env.Checker(), PackageManager{}))
	assert.True(t, errors.IsFatal(err))
}

func TestDetectPackageManager(t *testing.T) {
	c := Checker{Runner: testutil.NewFakeRunner("dnf", "brew"), FS: filesystem.NewMemory()}

	pm, ok := DetectPackageManager(c)
	require.True(t, ok)
	assert.Equal(t, "dnf", pm.Name)

	_, ok = DetectPackageManager(Checker{Runner: testutil.NewFakeRunner(), FS: filesystem.NewMemory()})
	assert.False(t, ok)
}

func TestBrewInstallIsNotElevated(t *testing.T) {
	runner := testutil.NewFakeRunner()
	pm := PackageManager{Name: "brew", Args: []string{"install"}}

	require.NoError(t, pm.Installer(runner, elevation.Sudo, "zsh")(context.Background()))
	assert.Equal(t, []string{"brew install zsh"}, runner.Calls())
}

func TestFrameworkStep_InstallThenVerify(t *testing.T) {
	mem := filesystem.NewMemory()
	runner := testutil.NewFakeRunner()
	env := testEnv(t, runner, mem)
	p := env.Runtime.Paths
	runner.OnRun = func(name string, args []string) error {
		if name == "sh" {
			return mem.WriteFile(p.FrameworkScript(), []byte("# omz"), 0644)
		}
		return nil
	}

	report, err := runQuiet(t, []Step{frameworkStep(env, env.Checker())})
	require.NoError(t, err)

	assert.Equal(t, Installed, report.Results[0].Outcome)
	calls := runner.Calls()
	require.Len(t, calls, 2)
	assert.True(t, strings.HasPrefix(calls[0], "sh -c curl -fsSL https://example.test/omz.sh | RUNZSH=no"))
	assert.Equal(t, "zsh -n "+p.FrameworkScript(), calls[1])
}

func TestFrameworkStep_MissingEntryScriptIsFatal(t *testing.T) {
	mem := filesystem.NewMemory()
	env := testEnv(t, testutil.NewFakeRunner(), mem)
	require.NoError(t, mem.MkdirAll(env.Runtime.Paths.FrameworkDir(), 0755))

	_, err := runQuiet(t, []Step{frameworkStep(env, env.Checker())})

	assert.True(t, errors.IsFatal(err))
	assert.True(t, errors.HasErrorCode(err, errors.ErrFrameworkLoad))
}

func TestCargoStep_PrefersBinstall(t *testing.T) {
	runner := testutil.NewFakeRunner("cargo", "cargo-binstall")
	env := testEnv(t, runner, filesystem.NewMemory())

	_, err := runQuiet(t, cargoSteps(env, env.Checker()))
	require.NoError(t, err)
	assert.Equal(t, []string{"cargo binstall -y ripgrep"}, runner.Calls())
}

func TestCargoStep_FallsBackToCargoInstall(t *testing.T) {
	runner := testutil.NewFakeRunner()
	env := testEnv(t, runner, filesystem.NewMemory())

	_, err := runQuiet(t, cargoSteps(env, env.Checker()))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(home, ".cargo", "bin", "cargo") + " install --locked ripgrep"}, runner.Calls())
}

func TestDockerStep_Elevated(t *testing.T) {
	runner := testutil.NewFakeRunner()
	env := testEnv(t, runner, filesystem.NewMemory())

	_, err := runQuiet(t, []Step{dockerStep(env, env.Checker())})
	require.NoError(t, err)
	assert.Equal(t, []string{"sh -c curl -fsSL https://example.test/docker | sudo sh"}, runner.Calls())
}

func TestFzfStep_SentinelSuppressesRerun(t *testing.T) {
	mem := filesystem.NewMemory()
	runner := testutil.NewFakeRunner()
	env := testEnv(t, runner, mem)
	p := env.Runtime.Paths
	runner.OnRun = func(name string, args []string) error {
		if name == "git" {
			return mem.MkdirAll(p.FzfDir(), 0755)
		}
		return nil
	}

	report, err := runQuiet(t, []Step{fzfStep(env, env.Checker())})
	require.NoError(t, err)
	assert.Equal(t, Installed, report.Results[0].Outcome)
	assert.Equal(t, []string{
		"git clone --depth 1 https://example.test/fzf.git " + p.FzfDir(),
		filepath.Join(p.FzfDir(), "install") + " --all --no-update-rc",
	}, runner.Calls())

	data, err := mem.ReadFile(p.FzfSentinel())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "installed|"))

	report, err = runQuiet(t, []Step{fzfStep(env, env.Checker())})
	require.NoError(t, err)
	assert.Equal(t, Satisfied, report.Results[0].Outcome)
	assert.Len(t, runner.Calls(), 2)
}

func TestFzfStep_BinaryOnPathIsSatisfied(t *testing.T) {
	runner := testutil.NewFakeRunner("fzf", "git")
	env := testEnv(t, runner, filesystem.NewMemory())

	report, err := runQuiet(t, []Step{fzfStep(env, env.Checker())})
	require.NoError(t, err)
	assert.Equal(t, Satisfied, report.Results[0].Outcome)
	assert.Empty(t, runner.Calls())
}

func TestFzfStep_BinaryInFzfBinIsSatisfied(t *testing.T) {
	mem := filesystem.NewMemory()
	runner := testutil.NewFakeRunner("git")
	env := testEnv(t, runner, mem)
	require.NoError(t, mem.WriteFile(filepath.Join(env.Runtime.Paths.FzfDir(), "bin", "fzf"), []byte("#!"), 0755))

	report, err := runQuiet(t, []Step{fzfStep(env, env.Checker())})
	require.NoError(t, err)
	assert.Equal(t, Satisfied, report.Results[0].Outcome)
	assert.Empty(t, runner.Calls())
}

func TestPluginStep_ClonesIntoFrameworkCustomDir(t *testing.T) {
	runner := testutil.NewFakeRunner()
	env := testEnv(t, runner, filesystem.NewMemory())

	_, err := runQuiet(t, pluginSteps(env, env.Checker()))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"git clone --depth 1 https://example.test/as " + env.Runtime.Paths.FrameworkPluginDir("zsh-autosuggestions"),
	}, runner.Calls())
}
