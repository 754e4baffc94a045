package zshboot

import (
	"bytes"
	"context"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/zshboot/pkg/dockerps"
	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/arthur-debert/zshboot/pkg/filesystem"
	"github.com/arthur-debert/zshboot/pkg/testutil"
	"github.com/arthur-debert/zshboot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testHome = "/home/tester"

type fetchFunc func(ctx context.Context) ([]byte, error)

func (f fetchFunc) Fetch(ctx context.Context) ([]byte, error) { return f(ctx) }

func remote(body string) fetchFunc {
	return func(context.Context) ([]byte, error) { return []byte(body), nil }
}

func offline() fetchFunc {
	return func(context.Context) ([]byte, error) {
		return nil, errors.New(errors.ErrFetch, "dial tcp: no route to host")
	}
}

type harness struct {
	runner *testutil.FakeRunner
	fs     types.FS
	env    map[string]string
	fetch  fetchFunc
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("ZSHBOOT_STATE_DIR", t.TempDir())
	t.Setenv("ZSHBOOT_CONFIG_DIR", t.TempDir())
	t.Setenv("ZSHRC_LOG_LEVEL", "")
	t.Setenv("ZSHRC_FORCE_UPDATE", "")
	return &harness{
		runner: testutil.NewFakeRunner(),
		fs:     filesystem.NewMemory(),
		env:    map[string]string{},
		fetch:  remote("export EDITOR=nvim\n"),
	}
}

func (h *harness) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := 0
	cmd := NewRootCmdWith(Deps{
		Runner:  h.runner,
		FS:      h.fs,
		Fetcher: h.fetch,
		Getenv:  func(k string) string { return h.env[k] },
		Home:    testHome,
		EUID:    &root,
	})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNoCommand(t *testing.T) {
	_, _, err := newHarness(t).run(t)
	assert.EqualError(t, err, MsgNoCommand)
}

func TestDockerps_HelpNeverTouchesRuntime(t *testing.T) {
	h := newHarness(t)
	h.runner.Install("docker")

	short, _, err := h.run(t, "dockerps", "-h")
	require.NoError(t, err)
	long, _, err := h.run(t, "dockerps", "--help")
	require.NoError(t, err)

	assert.Equal(t, dockerps.Usage, short)
	assert.Equal(t, short, long)
	assert.Empty(t, h.runner.Calls())
	assert.NotContains(t, h.runner.Lookups(), "docker")
}

func TestDockerps_Table(t *testing.T) {
	h := newHarness(t)
	h.runner.Install("docker")
	h.runner.Outputs["docker ps --format "+dockerps.Format+" -a"] = []byte("web\t8080:80\tUp 2 days\ndb\t\tExited (0) 3 hours ago\n")

	out, _, err := h.run(t, "dockerps", "-a")
	require.NoError(t, err)

	assert.Contains(t, out, "NAMES  PORTS    STATUS")
	assert.Contains(t, out, "db     -        Exited (0) 3 hours ago")
}

func TestDockerps_RuntimeMissing(t *testing.T) {
	_, _, err := newHarness(t).run(t, "dockerps")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuntimeUnavailable))
	assert.Equal(t, 1, errors.ExitCode(err))
}

func TestUpdateZshrc_Twice(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.fs.WriteFile(testHome+"/.zshrc", []byte("old\n"), 0644))

	out, _, err := h.run(t, "update-zshrc")
	require.NoError(t, err)
	assert.Contains(t, out, "zshrc updated")

	out, _, err = h.run(t, "update_zshrc")
	require.NoError(t, err)
	assert.Contains(t, out, "already in sync")

	data, err := h.fs.ReadFile(testHome + "/.zshrc")
	require.NoError(t, err)
	assert.Equal(t, "export EDITOR=nvim\n", string(data))
}

func TestUpdateZshrc_OfflineIsFatal(t *testing.T) {
	h := newHarness(t)
	h.fetch = offline()

	_, _, err := h.run(t, "update-zshrc")
	assert.True(t, errors.IsFatal(err))
}

func TestZshrcDiff(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.fs.WriteFile(testHome+"/.zshrc", []byte("export EDITOR=vim\n"), 0644))

	out, _, err := h.run(t, "zshrc-diff")
	require.NoError(t, err)
	assert.Contains(t, out, "-export EDITOR=vim")
	assert.Contains(t, out, "+export EDITOR=nvim")
}

func TestSyncCheck_OfflineSucceeds(t *testing.T) {
	h := newHarness(t)
	h.fetch = offline()

	_, _, err := h.run(t, "sync-check")
	assert.NoError(t, err)
}

func TestSyncCheck_ForceFromLegacyEnv(t *testing.T) {
	h := newHarness(t)
	h.env["ZSHRC_FORCE_UPDATE"] = "yes"

	_, _, err := h.run(t, "sync-check")
	require.NoError(t, err)

	data, err := h.fs.ReadFile(testHome + "/.zshrc")
	require.NoError(t, err)
	assert.Equal(t, "export EDITOR=nvim\n", string(data))
}

func TestInitZsh_EditorFollowsSSH(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run(t, "init", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "export EDITOR=nvim\n")
	assert.Contains(t, out, "alias dps='zshboot dockerps'")

	h.env["SSH_CONNECTION"] = "10.0.0.1 5000 10.0.0.2 22"
	out, _, err = h.run(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "export EDITOR=vim\n")
}

func TestInitHook(t *testing.T) {
	out, _, err := newHarness(t).run(t, "init", "hook")
	require.NoError(t, err)
	assert.Contains(t, out, `eval "$(zshboot init zsh)"`)
}

func TestConfig(t *testing.T) {
	out, _, err := newHarness(t).run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "[sync]")
	assert.Contains(t, out, "ripgrep")
}

func TestStatus_YAML(t *testing.T) {
	h := newHarness(t)
	h.runner.Install("git")
	h.fetch = offline()

	out, _, err := h.run(t, "status", "--format", "yaml")
	require.NoError(t, err)

	var got struct {
		Steps []struct {
			Step    string `yaml:"step"`
			Outcome string `yaml:"outcome"`
		} `yaml:"steps"`
		Sync struct {
			Error string `yaml:"error"`
		} `yaml:"sync"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got.Steps)
	assert.Equal(t, "required:git", got.Steps[0].Step)
	assert.Equal(t, "ok", got.Steps[0].Outcome)
	assert.Equal(t, "missing", got.Steps[1].Outcome)
	assert.NotEmpty(t, got.Sync.Error)
	assert.Empty(t, h.runner.Calls())
}

func TestStatus_Text(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.fs.WriteFile(testHome+"/.zshrc", []byte("export EDITOR=nvim\n"), 0644))

	out, _, err := h.run(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "bootstrap:")
	assert.Contains(t, out, "sync:")
	assert.Contains(t, out, "zshrc")
}

func TestStatus_UnknownFormat(t *testing.T) {
	_, _, err := newHarness(t).run(t, "status", "--format", "xml")
	assert.Error(t, err)
}

func TestBootstrap_DryRunOnly(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run(t, "bootstrap", "--dry-run", "--only", "fzf,docker")
	require.NoError(t, err)

	assert.Contains(t, out, "docker")
	assert.Contains(t, out, "fzf")
	assert.Contains(t, out, "would install")
	assert.NotContains(t, out, "cargo:")
	assert.Empty(t, h.runner.Calls())
}

func TestBootstrap_MissingFrameworkIsFatal(t *testing.T) {
	h := newHarness(t)
	h.runner.Install("git")
	h.runner.Install("curl")
	h.runner.Install("zsh")
	h.runner.OnRun = func(name string, args []string) error {
		return stderrors.New("network unreachable")
	}

	_, _, err := h.run(t, "bootstrap")

	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
	assert.Contains(t, err.Error(), "framework")
}

func TestVersionAndGuide(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "zshboot version dev")

	out, _, err = h.run(t, "guide")
	require.NoError(t, err)
	assert.Contains(t, out, "bootstrap")
	assert.Contains(t, out, "--config")

	out, _, err = h.run(t, "guide", "sync")
	require.NoError(t, err)
	assert.Contains(t, out, "update-zshrc")
}

func TestCompletion(t *testing.T) {
	out, _, err := newHarness(t).run(t, "completion", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "#compdef zshboot")
}
