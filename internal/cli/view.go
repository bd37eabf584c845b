package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alphapapa/graph.el/pkg/pipeline"
)

// viewChrome is the number of terminal lines used by the header and footer.
const viewChrome = 4

var (
	viewHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	viewStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// DiagramModel - Scrollable diagram viewer
// =============================================================================

// DiagramModel is the bubbletea model for scrolling a rendered diagram that
// does not fit the terminal.
type DiagramModel struct {
	Title   string
	Lines   []string
	Offset  int // first visible line
	XOffset int // first visible column
	Height  int
	Width   int
}

// NewDiagramModel creates a viewer for text, split into lines.
func NewDiagramModel(title, text string) DiagramModel {
	return DiagramModel{
		Title:  title,
		Lines:  strings.Split(strings.TrimSuffix(text, "\n"), "\n"),
		Height: 20,
		Width:  80,
	}
}

func (m DiagramModel) Init() tea.Cmd {
	return nil
}

func (m DiagramModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.Offset--
		case "down", "j":
			m.Offset++
		case "pgup":
			m.Offset -= m.Height
		case "pgdown", " ":
			m.Offset += m.Height
		case "home", "g":
			m.Offset = 0
		case "end", "G":
			m.Offset = len(m.Lines)
		case "left", "h":
			m.XOffset -= 4
		case "right", "l":
			m.XOffset += 4
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-viewChrome, 1)
		m.Width = max(msg.Width, 1)
	}
	m.clamp()
	return m, nil
}

// clamp keeps the offsets within the diagram.
func (m *DiagramModel) clamp() {
	m.Offset = min(m.Offset, max(len(m.Lines)-m.Height, 0))
	m.Offset = max(m.Offset, 0)
	m.XOffset = min(m.XOffset, max(m.maxWidth()-m.Width, 0))
	m.XOffset = max(m.XOffset, 0)
}

func (m DiagramModel) maxWidth() int {
	w := 0
	for _, l := range m.Lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	return w
}

func (m DiagramModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(viewHelpStyle.Render("↑/↓ scroll  ←/→ pan  pgup/pgdn page  q quit"))
	b.WriteString("\n")

	end := min(m.Offset+m.Height, len(m.Lines))
	for _, line := range m.Lines[m.Offset:end] {
		b.WriteString(slice(line, m.XOffset, m.Width))
		b.WriteString("\n")
	}

	b.WriteString(viewStatusStyle.Render(fmt.Sprintf("  [%d-%d/%d]", m.Offset+1, end, len(m.Lines))))
	return b.String()
}

// slice returns up to width runes of s starting at rune from.
func slice(s string, from, width int) string {
	r := []rune(s)
	if from >= len(r) {
		return ""
	}
	return string(r[from:min(from+width, len(r))])
}

// =============================================================================
// Command
// =============================================================================

// viewCommand creates the view command, which renders a tree and opens it in
// a full-screen pager.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		lf layoutFlags
		cf cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Render a tree file and browse it in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cfg, cf.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			ctx := cmd.Context()
			result, err := runner.Execute(ctx, args[0], pipeline.Options{
				Layout:  lf.apply(cmd, cfg.Layout),
				Formats: []string{pipeline.FormatText},
				Refresh: cf.refresh,
			})
			if err != nil {
				return err
			}

			m := NewDiagramModel(args[0], string(result.Artifacts[pipeline.FormatText]))
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
			_, err = p.Run()
			return err
		},
	}

	lf.register(cmd)
	cf.register(cmd)

	return cmd
}
