package shell

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/zshboot/pkg/config"
	"github.com/arthur-debert/zshboot/pkg/execx"
)

// Supported shells for `zshboot init`
var Supported = []string{"zsh"}

// Init holds what the init snippet is generated from
type Init struct {
	Config  *config.Config
	Runtime config.Runtime
	// Binary is how the snippet calls back into zshboot
	Binary string
}

// Write emits the init snippet for shell. Output only depends on the
// inputs so repeated calls produce identical text.
func (in Init) Write(w io.Writer, shell string) error {
	if shell != "zsh" {
		return fmt.Errorf("unsupported shell %q (supported: %s)", shell, strings.Join(Supported, ", "))
	}
	_, err := io.WriteString(w, in.Zsh())
	return err
}

// Zsh renders the zsh snippet
func (in Init) Zsh() string {
	p := in.Runtime.Paths
	bin := in.Binary
	if bin == "" {
		bin = "zshboot"
	}
	var b strings.Builder

	b.WriteString("# generated by zshboot init zsh\n")
	fmt.Fprintf(&b, "export EDITOR=%s\n", execx.Quote(in.Config.Editor(in.Runtime)))
	b.WriteString("export VISUAL=\"$EDITOR\"\n")

	for _, dir := range []string{p.CargoBin(), filepath.Join(p.FzfDir(), "bin"), p.LocalBin()} {
		q := execx.Quote(dir)
		fmt.Fprintf(&b, "[[ -d %s && \":$PATH:\" != *\":%s:\"* ]] && export PATH=%s:\"$PATH\"\n", q, dir, q)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "export ZSH=%s\n", execx.Quote(p.FrameworkDir()))
	fmt.Fprintf(&b, "ZSH_THEME=%s\n", execx.Quote(in.Config.Shell.Theme))
	plugins := make([]string, 0, len(in.Config.Shell.Plugins))
	for _, name := range in.Config.Shell.Plugins {
		plugins = append(plugins, execx.Quote(name))
	}
	fmt.Fprintf(&b, "plugins=(%s)\n", strings.Join(plugins, " "))
	b.WriteString("[[ -f \"$ZSH/oh-my-zsh.sh\" ]] && source \"$ZSH/oh-my-zsh.sh\"\n")
	fmt.Fprintf(&b, "[[ -f %s ]] && source %s\n", execx.Quote(filepath.Join(p.FzfDir(), "shell", "completion.zsh")), execx.Quote(filepath.Join(p.FzfDir(), "shell", "completion.zsh")))

	b.WriteString("\n")
	fmt.Fprintf(&b, "dockerps() { %s dockerps \"$@\"; }\n", bin)
	fmt.Fprintf(&b, "update_zshrc() { %s update-zshrc \"$@\"; }\n", bin)
	fmt.Fprintf(&b, "zshrc_diff() { %s zshrc-diff \"$@\"; }\n", bin)

	names := make([]string, 0, len(in.Config.Shell.Aliases))
	for name := range in.Config.Shell.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "alias %s=%s\n", name, execx.Quote(in.Config.Shell.Aliases[name]))
	}

	b.WriteString("\n")
	local := execx.Quote(p.LocalOverride())
	fmt.Fprintf(&b, "[[ -f %s ]] && source %s\n", local, local)
	return b.String()
}
