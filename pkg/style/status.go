package style

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Status of one line in `zshboot status`
type Status string

const (
	StatusOK      Status = "ok"      // Tool present / rc file in sync
	StatusMissing Status = "missing" // Tool would be installed by bootstrap
	StatusDrift   Status = "drift"   // rc file differs from remote
	StatusUnknown Status = "unknown" // Could not be determined (e.g. offline)
)

// StatusStyle returns the pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusOK:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusMissing:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusDrift:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case StatusUnknown:
		return pterm.NewStyle(pterm.FgMagenta)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusLine is one rendered line of the status report
type StatusLine struct {
	Group  string
	Name   string
	Status Status
	Detail string
}

// RenderStatusLine formats a line as `  name : status : detail`
func RenderStatusLine(l StatusLine) string {
	name := fmt.Sprintf("%-16s", l.Name)
	status := StatusStyle(l.Status).Sprint(fmt.Sprintf("%-8s", l.Status))
	if l.Detail == "" {
		return fmt.Sprintf("    %s : %s", name, status)
	}
	return fmt.Sprintf("    %s : %s : %s", name, status, l.Detail)
}

// WriteStatus prints lines grouped under their group headers in order
func WriteStatus(w io.Writer, t *Theme, lines []StatusLine) error {
	group := ""
	for i, l := range lines {
		if l.Group != group || i == 0 {
			group = l.Group
			if _, err := fmt.Fprintln(w, t.Title.Render(group+":")); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, RenderStatusLine(l)); err != nil {
			return err
		}
	}
	return nil
}
