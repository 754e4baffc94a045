package shell

import (
	"fmt"
)

// RCHook returns the lines a minimal ~/.zshrc needs: a passive sync check
// followed by evaluating the init snippet. Both are skipped when the binary
// is not on PATH so a fresh machine still gets a working shell.
func RCHook(binary string) string {
	if binary == "" {
		binary = "zshboot"
	}
	return fmt.Sprintf(`if command -v %[1]s >/dev/null 2>&1; then
  %[1]s sync-check
  eval "$(%[1]s init zsh)"
fi
`, binary)
}
