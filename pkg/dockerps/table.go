package dockerps

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/zshboot/pkg/style"
	"github.com/charmbracelet/lipgloss"
)

// Column headers
const (
	HeaderName   = "NAMES"
	HeaderPorts  = "PORTS"
	HeaderStatus = "STATUS"
)

// Gap separates columns
const Gap = "  "

// EmptyMessage is printed instead of a body when there are no rows
const EmptyMessage = "No containers found."

// Widths are the display widths of the three columns
type Widths struct {
	Name, Ports, Status int
}

// Total is the separator length
func (w Widths) Total() int {
	return w.Name + w.Ports + w.Status + 2*len(Gap)
}

// ColumnWidths returns, per column, the widest of the header and all values
func ColumnWidths(rows []Row) Widths {
	w := Widths{
		Name:   lipgloss.Width(HeaderName),
		Ports:  lipgloss.Width(HeaderPorts),
		Status: lipgloss.Width(HeaderStatus),
	}
	for _, r := range rows {
		w.Name = max(w.Name, lipgloss.Width(r.Name))
		w.Ports = max(w.Ports, lipgloss.Width(r.Ports))
		w.Status = max(w.Status, lipgloss.Width(r.Status))
	}
	return w
}

// Styles color the table
type Styles struct {
	Header    lipgloss.Style
	Separator lipgloss.Style
	Up        lipgloss.Style
	Down      lipgloss.Style
	Other     lipgloss.Style
}

// NewStyles takes the table styles from a theme
func NewStyles(t *style.Theme) Styles {
	return Styles{Header: t.Header, Separator: t.Separator, Up: t.Up, Down: t.Down, Other: t.Other}
}

// For returns the style of a status class
func (s Styles) For(c Class) lipgloss.Style {
	switch c {
	case Up:
		return s.Up
	case Down:
		return s.Down
	default:
		return s.Other
	}
}

// Render writes the header, a separator and one line per row. Cells are
// padded before styling so escape sequences never affect alignment.
func Render(w io.Writer, rows []Row, s Styles) error {
	widths := ColumnWidths(rows)

	header := strings.Join([]string{
		style.PadRight(HeaderName, widths.Name),
		style.PadRight(HeaderPorts, widths.Ports),
		style.PadRight(HeaderStatus, widths.Status),
	}, Gap)
	if _, err := fmt.Fprintln(w, s.Header.Render(header)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, s.Separator.Render(strings.Repeat("-", widths.Total()))); err != nil {
		return err
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}

	for _, r := range rows {
		status := s.For(Classify(r.Status)).Render(style.PadRight(r.Status, widths.Status))
		line := style.PadRight(r.Name, widths.Name) + Gap + style.PadRight(r.Ports, widths.Ports) + Gap + status
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
