package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/robertoranon/gltf-transform/pkg/core/property"
	"github.com/robertoranon/gltf-transform/pkg/document"
	"github.com/robertoranon/gltf-transform/pkg/pipeline"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	listProperties bool // print a row per property instead of the summary table
}

// inspectCommand creates the inspect command for examining document files.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the structure of a document file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, args[0], &opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.listProperties, "properties", "p", false, "list every property with its references")

	return cmd
}

func (c *CLI) runInspect(cmd *cobra.Command, input string, opts *inspectOpts) error {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	doc, err := runner.Load(cmd.Context(), pipeline.Options{Path: input})
	if err != nil {
		return err
	}

	printKeyValue("File", input)
	printStats(doc.Graph().NodeCount(), doc.Graph().LinkCount(), false)
	fmt.Println()

	if opts.listProperties {
		printPropertyList(doc)
	} else {
		printSummaryTable(doc)
	}

	printNextStep("Render a diagram", fmt.Sprintf("%s render %s", appName, input))
	return nil
}

// printSummaryTable prints per-type property counts.
func printSummaryTable(doc *document.Document) {
	stats := doc.Stats()

	types := make([]property.Type, 0, len(stats))
	for t := range stats {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	rows := make([][]string, 0, len(types))
	for _, t := range types {
		rows = append(rows, []string{string(t), fmt.Sprintf("%d", stats[t])})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Type", "Count").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return StyleValue
		})
	fmt.Println(t.Render())
}

// printPropertyList prints one line per property with its outgoing references.
func printPropertyList(doc *document.Document) {
	g := doc.Graph()
	for _, p := range doc.Properties() {
		name := p.Name()
		if name == "" {
			name = StyleDim.Render("(unnamed)")
		}
		fmt.Printf("%s %s\n", StyleHighlight.Render(string(p.PropertyType())), name)

		for _, l := range g.ChildLinks(p) {
			child := l.Child()
			if child == nil {
				continue
			}
			target := "?"
			if cp, ok := child.(property.Property); ok {
				target = string(cp.PropertyType())
				if cp.Name() != "" {
					target += " " + cp.Name()
				}
			}
			printDetail("%s %s %s", l.Name(), iconArrow, target)
		}
	}
	fmt.Println()
}

// summaryLine builds a compact one-line description of a document.
func summaryLine(doc *document.Document) string {
	stats := doc.Stats()
	parts := make([]string, 0, len(stats))

	types := make([]property.Type, 0, len(stats))
	for t := range stats {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, t := range types {
		parts = append(parts, fmt.Sprintf("%d %s", stats[t], strings.ToLower(string(t))))
	}
	return strings.Join(parts, ", ")
}
