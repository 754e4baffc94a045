package dockerps_test

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/arthur-debert/zshboot/pkg/dockerps"
	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/arthur-debert/zshboot/pkg/style"
	"github.com/arthur-debert/zshboot/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func plainStyles() dockerps.Styles {
	return dockerps.NewStyles(style.Plain())
}

func newLister(r *testutil.FakeRunner, out *bytes.Buffer) *dockerps.Lister {
	l := dockerps.NewLister(r, out, plainStyles())
	l.Logger = zerolog.Nop()
	return l
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want dockerps.Invocation
	}{
		{"empty", nil, dockerps.Invocation{Variant: dockerps.Plain, Extra: []string{}}},
		{"plain_extra", []string{"-a", "--filter", "name=web"}, dockerps.Invocation{Extra: []string{"-a", "--filter", "name=web"}}},
		{"compose_forwards", []string{"--compose", "--all", "web"}, dockerps.Invocation{Variant: dockerps.Compose, Extra: []string{"--all", "web"}}},
		{"short_help", []string{"-h"}, dockerps.Invocation{Help: true, Extra: []string{}}},
		{"long_help", []string{"--compose", "--help"}, dockerps.Invocation{Variant: dockerps.Compose, Help: true, Extra: []string{}}},
		{"double_dash", []string{"--", "--compose", "-h"}, dockerps.Invocation{Extra: []string{"--", "--compose", "-h"}}},
		{"double_dash_after_flags", []string{"--compose", "web", "--", "-a"}, dockerps.Invocation{Variant: dockerps.Compose, Extra: []string{"web", "--", "-a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dockerps.ParseArgs(tt.args))
		})
	}
}

func TestVariantArgs(t *testing.T) {
	assert.Equal(t, []string{"ps", "--format", dockerps.Format, "-a"}, dockerps.Plain.Args([]string{"-a"}))
	assert.Equal(t, []string{"compose", "ps", "--format", dockerps.Format, "--all", "web"}, dockerps.Compose.Args([]string{"--all", "web"}))
}

func TestParseRows(t *testing.T) {
	out := "web\t8080:80\tUp 2 days\ndb\t\tExited (0) 3 hours ago\n\nlonely\n"

	rows := dockerps.ParseRows(out)

	assert.Equal(t, []dockerps.Row{
		{Name: "web", Ports: "8080:80", Status: "Up 2 days"},
		{Name: "db", Ports: "-", Status: "Exited (0) 3 hours ago"},
		{Name: "lonely", Ports: "-", Status: ""},
	}, rows)
	assert.Empty(t, dockerps.ParseRows(""))
}

func TestColumnWidths(t *testing.T) {
	rows := []dockerps.Row{
		{Name: "web", Ports: "8080:80", Status: "Up 2 days"},
		{Name: "db", Ports: "-", Status: "Exited (0) 3 hours ago"},
	}

	w := dockerps.ColumnWidths(rows)

	assert.Equal(t, len("NAMES"), w.Name)
	assert.Equal(t, len("8080:80"), w.Ports)
	assert.Equal(t, len("Exited (0) 3 hours ago"), w.Status)
	assert.Equal(t, w.Name+w.Ports+w.Status+4, w.Total())
}

func TestRender(t *testing.T) {
	rows := dockerps.ParseRows("web\t8080:80\tUp 2 days\ndb\t\tExited (0) 3 hours ago\n")

	var buf bytes.Buffer
	require.NoError(t, dockerps.Render(&buf, rows, plainStyles()))

	want := strings.Join([]string{
		"NAMES  PORTS    STATUS                ",
		"--------------------------------------",
		"web    8080:80  Up 2 days             ",
		"db     -        Exited (0) 3 hours ago",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dockerps.Render(&buf, nil, plainStyles()))

	assert.Equal(t, "NAMES  PORTS  STATUS\n--------------------\nNo containers found.\n", buf.String())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		status string
		want   dockerps.Class
	}{
		{"Up 5 minutes", dockerps.Up},
		{"Up 2 days (healthy)", dockerps.Up},
		{"Exited (137) 2 minutes ago", dockerps.Down},
		{"Exited", dockerps.Down},
		{"stopped", dockerps.Down},
		{"Created", dockerps.Other},
		{"", dockerps.Other},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dockerps.Classify(tt.status), tt.status)
	}
	assert.Equal(t, "down", dockerps.Down.String())
}

func TestRun_HelpNeverTouchesRuntime(t *testing.T) {
	var outputs []string
	for _, flag := range []string{"-h", "--help"} {
		runner := testutil.NewFakeRunner("docker")
		var buf bytes.Buffer

		require.NoError(t, newLister(runner, &buf).Run(context.Background(), []string{flag}))

		assert.Empty(t, runner.Calls())
		assert.Empty(t, runner.Lookups())
		outputs = append(outputs, buf.String())
	}
	assert.Equal(t, outputs[0], outputs[1])
	assert.Equal(t, dockerps.Usage, outputs[0])
}

func TestRun_RuntimeMissing(t *testing.T) {
	var buf bytes.Buffer

	err := newLister(testutil.NewFakeRunner(), &buf).Run(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuntimeUnavailable))
	assert.Equal(t, 1, errors.ExitCode(err))
	assert.Empty(t, buf.String())
}

func TestRun_ComposeForwardsArgs(t *testing.T) {
	runner := testutil.NewFakeRunner("docker")
	line := "docker compose ps --format " + dockerps.Format + " --all web"
	runner.Outputs[line] = []byte("proj-web-1\t0.0.0.0:80->80/tcp\tUp 1 hour\n")
	var buf bytes.Buffer

	require.NoError(t, newLister(runner, &buf).Run(context.Background(), []string{"--compose", "--all", "web"}))

	assert.Equal(t, []string{line}, runner.Calls())
	assert.Contains(t, buf.String(), "proj-web-1")
}

func TestRun_ListingFailure(t *testing.T) {
	r := &testutil.MockRunner{}
	r.On("LookPath", "docker").Return("/usr/bin/docker", nil)
	r.On("Output", mock.Anything, "docker", []string{"ps", "--format", dockerps.Format}).
		Return(nil, stderrors.New("daemon not running"))
	l := dockerps.NewLister(r, &bytes.Buffer{}, plainStyles())
	l.Logger = zerolog.Nop()

	err := l.Run(context.Background(), nil)

	assert.True(t, errors.IsErrorCode(err, errors.ErrListing))
	r.AssertExpectations(t)
}
