package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer turns a topic body into terminal output. ext is the extension of
// the file the topic was read from.
type Renderer interface {
	Render(content, ext string) string
}

// RendererFunc adapts a plain function to Renderer
type RendererFunc func(content, ext string) string

// Render calls f
func (f RendererFunc) Render(content, ext string) string { return f(content, ext) }

// Raw prints topics exactly as stored
var Raw Renderer = RendererFunc(func(content, _ string) string { return content })

// Markdown renders .md topics through glamour and leaves everything else
// alone. Style is a glamour standard style; empty means pick from the
// terminal background.
type Markdown struct {
	Style string
	Wrap  int
}

// ForOutput returns the markdown renderer suited to stdout: auto styling on
// a terminal, escape-free "notty" output otherwise.
func ForOutput(tty bool) *Markdown {
	if tty {
		return &Markdown{}
	}
	return &Markdown{Style: "notty"}
}

// Render implements Renderer. Anything glamour rejects is shown raw.
func (m *Markdown) Render(content, ext string) string {
	if ext != ".md" {
		return content
	}

	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if m.Style != "" {
		opts = []glamour.TermRendererOption{glamour.WithStandardStyle(m.Style)}
	}
	if m.Wrap > 0 {
		opts = append(opts, glamour.WithWordWrap(m.Wrap))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}
