// Package pkg provides the core libraries for gltfx asset document tooling.
//
// # Overview
//
// gltfx models an asset document as an in-memory property graph: typed
// properties (scenes, nodes, meshes, materials, textures, extensions)
// connected by named, owned references. The pkg directory is organized into
// three main areas:
//
//  1. [core] - Domain logic (graph engine, property model)
//  2. [document], [io] - Document assembly and serialization
//  3. [cache], [store], [render], [pipeline] - Infrastructure and orchestration
//
// # Architecture
//
// The typical data flow through gltfx:
//
//	Document file (JSON snapshot)
//	         ↓
//	    [io] package (snapshot ↔ live document)
//	         ↓
//	    [core/graph] + [core/property] (reference graph + typed properties)
//	         ↓
//	    [render/nodelink] package (DOT + Graphviz SVG)
//	         ↓
//	    DOT/SVG/JSON output
//
// # Quick Start
//
// Build a document and render it:
//
//	import (
//	    "github.com/robertoranon/gltf-transform/pkg/document"
//	    "github.com/robertoranon/gltf-transform/pkg/io"
//	    "github.com/robertoranon/gltf-transform/pkg/render/nodelink"
//	)
//
//	// 1. Assemble a document
//	doc := document.New()
//	scene := doc.CreateScene("main")
//	node := doc.CreateNode("body")
//	_ = scene.AddChild(node)
//
//	// 2. Serialize it
//	data, _ := io.MarshalJSON(doc)
//
//	// 3. Render a diagram
//	dot := nodelink.ToDOT(doc, nodelink.Options{})
//	svg, _ := nodelink.RenderSVG(dot)
//
// # Main Packages
//
// ## Core Domain Logic
//
// [core/graph] - Generic reference graph: nodes with stable identifiers,
// owned directed links, bidirectional adjacency indexes, and lifecycle
// operations (link, unlink, disconnect, dispose).
//
// [core/property] - The typed property model layered on the graph: named
// properties with extras metadata, reference accessors, detach and dispose
// semantics, and the extension registry.
//
// [document] - The document façade: a root property anchoring every created
// property, factory methods, and typed inventory listings.
//
// ## Serialization and Infrastructure
//
// [io] - Snapshot format and JSON import/export with round-trip fidelity.
//
// [cache] - Artifact cache keyed by snapshot content hash (file, Redis, or
// disabled backends).
//
// [store] - Named snapshot persistence (in-memory or MongoDB backends).
//
// ## Orchestration
//
// [pipeline] - The load → validate → render pipeline shared by the CLI and
// the HTTP server, with artifact caching.
//
// [render/nodelink] - Graphviz-based node-link diagrams of the property
// graph.
package pkg
