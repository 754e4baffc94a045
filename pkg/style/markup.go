package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser renders [tag]text[/tag] markup with theme styles
type MarkupParser struct {
	styles map[string]lipgloss.Style
}

// NewMarkupParser creates a parser for the tags of t
func NewMarkupParser(t *Theme) *MarkupParser {
	return &MarkupParser{
		styles: map[string]lipgloss.Style{
			"title":   t.Title,
			"success": t.Success,
			"error":   t.Error,
			"warning": t.Warning,
			"info":    t.Info,
			"code":    t.Code,
			"path":    t.Path,
			"muted":   t.Muted,
			"bold":    t.Renderer.NewStyle().Bold(true),
		},
	}
}

// Render processes markup text and returns styled output. Unknown tags are
// left as-is; inner tags of the same kind are not supported.
func (p *MarkupParser) Render(text string) string {
	result := text
	for {
		before := result
		for tag, style := range p.styles {
			pattern := regexp.MustCompile(`\[` + tag + `\](.*?)\[/` + tag + `\]`)
			result = pattern.ReplaceAllStringFunc(result, func(match string) string {
				sub := pattern.FindStringSubmatch(match)
				return style.Render(sub[1])
			})
		}
		if result == before {
			return result
		}
	}
}

// RenderTemplate substitutes {{key}} placeholders, then renders markup
func (p *MarkupParser) RenderTemplate(template string, vars map[string]string) string {
	result := template
	for key, value := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return p.Render(result)
}
