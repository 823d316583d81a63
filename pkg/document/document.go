// Package document provides the document-level factory over the property
// graph. A Document owns one graph and its designated root; every resource
// created through the factory is linked under the root, so all live
// properties stay reachable from it. Extension sub-nodes are the exception:
// they are reachable only through their host.
package document

import (
	"github.com/robertoranon/gltf-transform/pkg/core/graph"
	"github.com/robertoranon/gltf-transform/pkg/core/property"
)

// Root link names, one list per resource kind.
const (
	refScenes    = "scenes"
	refNodes     = "nodes"
	refMeshes    = "meshes"
	refMaterials = "materials"
	refTextures  = "textures"
)

// Document is an in-memory asset document: a property graph plus the single
// root node anchoring its inventory. The zero value is not usable - use New.
//
// Like the graph it owns, a Document is not safe for concurrent use without
// external synchronization.
type Document struct {
	graph *graph.Graph
	root  *property.Root
}

// New creates an empty document with a fresh graph and root.
func New() *Document {
	g := graph.New()
	return &Document{graph: g, root: property.NewRoot(g)}
}

// Graph returns the document's owning graph.
func (d *Document) Graph() *graph.Graph { return d.graph }

// Root returns the document's root property.
func (d *Document) Root() *property.Root { return d.root }

// CreateScene creates a scene and links it into the document inventory.
func (d *Document) CreateScene(name string) *property.Scene {
	s := property.NewScene(d.graph, name)
	d.anchor(refScenes, s)
	return s
}

// CreateNode creates a node and links it into the document inventory.
func (d *Document) CreateNode(name string) *property.Node {
	n := property.NewNode(d.graph, name)
	d.anchor(refNodes, n)
	return n
}

// CreateMesh creates a mesh and links it into the document inventory.
func (d *Document) CreateMesh(name string) *property.Mesh {
	m := property.NewMesh(d.graph, name)
	d.anchor(refMeshes, m)
	return m
}

// CreateMaterial creates a material and links it into the document inventory.
func (d *Document) CreateMaterial(name string) *property.Material {
	m := property.NewMaterial(d.graph, name)
	d.anchor(refMaterials, m)
	return m
}

// CreateTexture creates a texture and links it into the document inventory.
func (d *Document) CreateTexture(name string) *property.Texture {
	t := property.NewTexture(d.graph, name)
	d.anchor(refTextures, t)
	return t
}

// CreateExtension creates an extension node for the token's identifier.
// Extension nodes are not linked under the root; they become reachable once
// attached to a host via SetExtension.
func (d *Document) CreateExtension(tok property.Token, name string) *property.Extension {
	return property.NewExtension(d.graph, tok, name)
}

// Scenes returns the document's scenes in creation order.
func (d *Document) Scenes() []*property.Scene {
	return anchored[*property.Scene](d, refScenes)
}

// Nodes returns the document's nodes in creation order.
func (d *Document) Nodes() []*property.Node {
	return anchored[*property.Node](d, refNodes)
}

// Meshes returns the document's meshes in creation order.
func (d *Document) Meshes() []*property.Mesh {
	return anchored[*property.Mesh](d, refMeshes)
}

// Materials returns the document's materials in creation order.
func (d *Document) Materials() []*property.Material {
	return anchored[*property.Material](d, refMaterials)
}

// Textures returns the document's textures in creation order.
func (d *Document) Textures() []*property.Texture {
	return anchored[*property.Texture](d, refTextures)
}

// Properties returns every live property in the document, root included,
// in creation order.
func (d *Document) Properties() []property.Property {
	nodes := d.graph.Nodes()
	out := make([]property.Property, 0, len(nodes))
	for _, n := range nodes {
		if p, ok := n.(property.Property); ok {
			out = append(out, p)
		}
	}
	return out
}

// Stats reports the number of live properties per kind.
func (d *Document) Stats() map[property.Type]int {
	stats := make(map[property.Type]int)
	for _, p := range d.Properties() {
		stats[p.PropertyType()]++
	}
	return stats
}

// anchor links a freshly created property under the root. The link cannot
// fail: both endpoints are live members of d.graph.
func (d *Document) anchor(ref string, p property.Property) {
	_, _ = d.graph.Link(ref, string(p.PropertyType()), d.root, p)
}

func anchored[T property.Property](d *Document, ref string) []T {
	var out []T
	for _, l := range d.graph.ChildLinks(d.root) {
		if l.Name() != ref {
			continue
		}
		if p, ok := l.Child().(T); ok {
			out = append(out, p)
		}
	}
	return out
}
