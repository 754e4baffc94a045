package bootstrap

import (
	"context"

	"github.com/arthur-debert/zshboot/pkg/elevation"
	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/arthur-debert/zshboot/pkg/types"
)

// PackageManager installs system packages
type PackageManager struct {
	Name       string
	Args       []string
	Privileged bool
}

// knownManagers are probed in order; the first present one wins
var knownManagers = []PackageManager{
	{Name: "apt-get", Args: []string{"install", "-y"}, Privileged: true},
	{Name: "dnf", Args: []string{"install", "-y"}, Privileged: true},
	{Name: "pacman", Args: []string{"-S", "--noconfirm"}, Privileged: true},
	{Name: "brew", Args: []string{"install"}},
}

// DetectPackageManager returns the first known manager on PATH
func DetectPackageManager(c Checker) (PackageManager, bool) {
	for _, pm := range knownManagers {
		if c.CommandExists(pm.Name) {
			return pm, true
		}
	}
	return PackageManager{}, false
}

// Installer returns an Action installing pkg with pm, elevated per mode
func (pm PackageManager) Installer(r types.Runner, mode elevation.Mode, pkg string) Action {
	return func(ctx context.Context) error {
		if pm.Name == "" {
			return errors.Newf(errors.ErrStepInstall, "no supported package manager found to install %s", pkg)
		}
		args := append(append([]string(nil), pm.Args...), pkg)
		name := pm.Name
		if pm.Privileged {
			name, args = mode.Wrap(name, args...)
		}
		return r.Run(ctx, name, args...)
	}
}
