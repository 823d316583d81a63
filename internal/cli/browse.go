package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/robertoranon/gltf-transform/pkg/core/graph"
	"github.com/robertoranon/gltf-transform/pkg/core/property"
	"github.com/robertoranon/gltf-transform/pkg/document"
	"github.com/robertoranon/gltf-transform/pkg/pipeline"
)

// List styles.
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command for interactive graph navigation.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse a document graph interactively",
		Long: `Browse opens a terminal UI for walking the property graph. Starting
at the root, arrow keys move between outgoing references, enter descends
into the selected property, and backspace returns to the parent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := pipeline.NewRunner(nil, nil, c.Logger)
			doc, err := runner.Load(cmd.Context(), pipeline.Options{Path: args[0]})
			if err != nil {
				return err
			}

			model := NewBrowseModel(doc, args[0])
			p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}

// BrowseModel is the bubbletea model for interactive graph navigation.
type BrowseModel struct {
	Doc     *document.Document
	File    string
	Current property.Property
	Trail   []property.Property
	Cursor  int
}

// NewBrowseModel creates a browse model rooted at the document root.
func NewBrowseModel(doc *document.Document, file string) BrowseModel {
	return BrowseModel{
		Doc:     doc,
		File:    file,
		Current: doc.Root(),
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	links := m.links()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(links)-1 {
				m.Cursor++
			}
		case "enter", "right", "l":
			if m.Cursor < len(links) {
				child := links[m.Cursor].Child()
				if cp, ok := child.(property.Property); ok {
					m.Trail = append(m.Trail, m.Current)
					m.Current = cp
					m.Cursor = 0
				}
			}
		case "backspace", "left", "h":
			if n := len(m.Trail); n > 0 {
				m.Current = m.Trail[n-1]
				m.Trail = m.Trail[:n-1]
				m.Cursor = 0
			}
		}
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s — %s", m.File, summaryLine(m.Doc))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ descend  ⌫ back  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.breadcrumb())
	b.WriteString("\n\n")

	links := m.links()
	if len(links) == 0 {
		b.WriteString(listDimStyle.Render("  (no outgoing references)"))
		b.WriteString("\n")
	}
	for i, l := range links {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-20s %s", cursor, l.Name(), describeNode(l.Child()))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if parents := m.parentSummary(); parents != "" {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("referenced by: " + parents))
		b.WriteString("\n")
	}

	return b.String()
}

// links returns the current property's outgoing links.
func (m BrowseModel) links() []*graph.Link {
	return m.Doc.Graph().ChildLinks(m.Current)
}

// breadcrumb renders the navigation trail from the root to the current property.
func (m BrowseModel) breadcrumb() string {
	parts := make([]string, 0, len(m.Trail)+1)
	for _, p := range m.Trail {
		parts = append(parts, listDimStyle.Render(describeProperty(p)))
	}
	parts = append(parts, StyleHighlight.Render(describeProperty(m.Current)))
	return "  " + strings.Join(parts, listDimStyle.Render(" "+iconArrow+" "))
}

// parentSummary lists the distinct parents referencing the current property.
func (m BrowseModel) parentSummary() string {
	parents := m.Doc.Graph().ListParents(m.Current)
	if len(parents) == 0 {
		return ""
	}
	parts := make([]string, 0, len(parents))
	for _, p := range parents {
		parts = append(parts, describeNode(p))
	}
	return strings.Join(parts, ", ")
}

func describeProperty(p property.Property) string {
	if p.Name() != "" {
		return fmt.Sprintf("%s %q", p.PropertyType(), p.Name())
	}
	return string(p.PropertyType())
}

func describeNode(n graph.Node) string {
	if p, ok := n.(property.Property); ok {
		return describeProperty(p)
	}
	return "?"
}
