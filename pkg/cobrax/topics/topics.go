// Package topics provides topic-based help for a Cobra CLI. Topics are
// markdown or text files read from an fs.FS, typically an embedded one, and
// served by a `guide [topic]` command.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// TopicManager manages help topics for a Cobra application
type TopicManager struct {
	fsys       fs.FS
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic represents a help topic
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions to consider as topics
	// Defaults to [".txt", ".md"] if not specified
	Extensions []string

	// Renderer formats topic content, Raw when nil
	Renderer Renderer
}

// New loads the topics found in fsys
func New(fsys fs.FS, opts Options) (*TopicManager, error) {
	tm := &TopicManager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = Raw
	}
	if err := tm.scanTopics(); err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return tm, nil
}

func (tm *TopicManager) scanTopics() error {
	if tm.fsys == nil {
		return nil
	}
	return fs.WalkDir(tm.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !tm.supported(path.Ext(p)) {
			return nil
		}

		content, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		tm.topics[name] = &Topic{Name: name, FilePath: p, Content: string(content)}
		return nil
	})
}

func (tm *TopicManager) supported(ext string) bool {
	for _, valid := range tm.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// GetTopic retrieves a topic by name. Flag-style names (--dry-run) also
// match an "option-" prefixed topic.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics["option-"+name]
	return topic, ok
}

// ListTopics returns all topic names sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render writes the rendered topic to w
func (tm *TopicManager) Render(w io.Writer, topic *Topic) error {
	_, err := io.WriteString(w, tm.renderer.Render(topic.Content, path.Ext(topic.FilePath)))
	return err
}

// WriteIndex lists the topics, general ones first then option topics
func (tm *TopicManager) WriteIndex(w io.Writer, binary string) error {
	names := tm.ListTopics()
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "No guide topics available.")
		return err
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, "option-") {
			options = append(options, strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	var b strings.Builder
	b.WriteString("Available guide topics:\n")
	if len(general) > 0 {
		b.WriteString("\nGeneral topics:\n")
		for _, name := range general {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		b.WriteString("\nOption topics:\n")
		for _, name := range options {
			fmt.Fprintf(&b, "  --%s\n", name)
		}
	}
	fmt.Fprintf(&b, "\nUse '%s guide <topic>' to read about a specific topic.\n", binary)
	_, err := io.WriteString(w, b.String())
	return err
}

// Command returns the `guide [topic]` command serving tm
func (tm *TopicManager) Command(rootName string) *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Read the built-in guides",
		Long: `Guide shows the built-in topic guides.
Without arguments it lists the available topics.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return tm.ListTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return tm.WriteIndex(out, rootName)
			}
			topic, ok := tm.GetTopic(args[0])
			if !ok {
				return fmt.Errorf("unknown guide topic %q, run '%s guide' to list topics", args[0], rootName)
			}
			return tm.Render(out, topic)
		},
	}
}
