package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/robertoranon/gltf-transform/pkg/core/property"
	"github.com/robertoranon/gltf-transform/pkg/document"
)

// Style constants for diagram rendering.
const (
	// StyleColor fills each node with a color derived from its property type.
	StyleColor = "color"
	// StyleMono renders all nodes with the default white fill.
	StyleMono = "mono"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Style selects the visual style, [StyleColor] or [StyleMono].
	// An empty style renders as [StyleColor].
	Style string

	// Detailed includes property UUIDs and extras entries in node labels.
	// When false, only the type and name are shown.
	Detailed bool
}

// fillColors maps property types to Graphviz fill colors so that each
// kind of node is visually distinguishable in the diagram.
var fillColors = map[property.Type]string{
	property.TypeRoot:      "gold",
	property.TypeScene:     "lightskyblue",
	property.TypeNode:      "palegreen",
	property.TypeMesh:      "khaki",
	property.TypeMaterial:  "lightsalmon",
	property.TypeTexture:   "plum",
	property.TypeExtension: "lightgrey",
}

// ToDOT converts a document to Graphviz DOT format for node-link visualization.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Extension attachments are rendered with dashed edges to distinguish them
// from ordinary references.
func ToDOT(d *document.Document, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, p := range d.Properties() {
		label := fmtLabel(p, opts.Detailed)
		attrs := fmtAttrs(p, label, opts.Style)
		fmt.Fprintf(&buf, "  %q [%s];\n", p.GraphID().String(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, p := range d.Properties() {
		for _, l := range d.Graph().ChildLinks(p) {
			if l.Kind() == string(property.TypeExtension) {
				fmt.Fprintf(&buf, "  %q -> %q [label=%q, style=dashed];\n",
					l.ParentID().String(), l.ChildID().String(), l.Name())
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n",
				l.ParentID().String(), l.ChildID().String(), l.Name())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(p property.Property, detailed bool) string {
	head := string(p.PropertyType())
	if name := p.Name(); name != "" {
		head += "\n" + name
	}
	if ext, ok := p.(property.ExtensionProperty); ok {
		head += "\n" + ext.ExtensionID()
	}
	if !detailed {
		return head
	}

	parts := []string{fmt.Sprintf("id: %s", shortID(p))}
	extras := p.Extras()
	for _, k := range slices.Sorted(maps.Keys(extras)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, extras[k]))
	}

	return head + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(p property.Property, label string, style string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if style != StyleMono {
		if fill, ok := fillColors[p.PropertyType()]; ok {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%s", fill))
		}
	}
	if p.PropertyType() == property.TypeExtension {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"")
	}
	return attrs
}

func shortID(p property.Property) string {
	id := p.GraphID().String()
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or embedding.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
