package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds every style zshboot renders with. All styles come from a
// renderer bound to one writer so color detection follows that writer.
type Theme struct {
	Renderer *lipgloss.Renderer

	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Code    lipgloss.Style
	Path    lipgloss.Style

	// dockerps table
	Header    lipgloss.Style
	Separator lipgloss.Style
	Up        lipgloss.Style
	Down      lipgloss.Style
	Other     lipgloss.Style
}

// NewTheme creates a theme rendering to w. With noColor every style renders
// as plain text.
func NewTheme(w io.Writer, noColor bool) *Theme {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return newTheme(r)
}

// Plain is a theme that never emits escape sequences
func Plain() *Theme {
	return NewTheme(io.Discard, true)
}

func newTheme(r *lipgloss.Renderer) *Theme {
	return &Theme{
		Renderer: r,
		Title:    r.NewStyle().Foreground(HeadingColor).Bold(true),
		Muted:    r.NewStyle().Foreground(MutedColor),
		Success:  r.NewStyle().Foreground(SuccessColor).Bold(true),
		Error:    r.NewStyle().Foreground(ErrorColor).Bold(true),
		Warning:  r.NewStyle().Foreground(WarningColor).Bold(true),
		Info:     r.NewStyle().Foreground(InfoColor),
		Code:     r.NewStyle().Foreground(PrimaryColor),
		Path:     r.NewStyle().Foreground(InfoColor).Italic(true),

		Header:    r.NewStyle().Foreground(HeadingColor).Bold(true),
		Separator: r.NewStyle().Foreground(BorderColor),
		Up:        r.NewStyle().Foreground(UpColor),
		Down:      r.NewStyle().Foreground(DownColor),
		Other:     r.NewStyle().Foreground(OtherColor),
	}
}

// PadRight pads s to width display cells. Styled text must be padded
// before styling or escape sequences count towards the width.
func PadRight(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + spaces(width-n)
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
