// Package nodelink renders document graphs as traditional node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// properties appear as boxes connected by labeled arrows. Each property type
// is drawn with its own fill color, and extension attachments use dashed
// edges so structural references and extension data remain distinguishable.
//
// # Usage
//
// Convert a document to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(doc, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include the property UUID and extras.
package nodelink
