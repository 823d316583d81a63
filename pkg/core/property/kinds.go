package property

import (
	"maps"

	"github.com/robertoranon/gltf-transform/pkg/core/graph"
)

// Link names for the typed references below.
const (
	refChildren         = "children"
	refMesh             = "mesh"
	refMaterial         = "material"
	refBaseColorTexture = "baseColorTexture"
	refNormalTexture    = "normalTexture"
)

// Root is the single always-reachable anchor of a document. Root links
// survive Detach, which is how detached resources stay in the document's
// inventory. Root does not embed extension attachment: extensions cannot be
// set on it by construction.
type Root struct {
	base
}

// NewRoot creates the root node and registers it with g. A graph designates
// exactly one root; the document layer owns that invariant.
func NewRoot(g *graph.Graph) *Root {
	r := &Root{}
	g.Register(r)
	return r
}

// PropertyType returns TypeRoot.
func (r *Root) PropertyType() Type { return TypeRoot }

// Scene groups the top-level nodes of an asset.
type Scene struct {
	extensible
}

// NewScene creates a scene and registers it with g.
func NewScene(g *graph.Graph, name string) *Scene {
	s := &Scene{}
	s.name = name
	g.Register(s)
	return s
}

// PropertyType returns TypeScene.
func (s *Scene) PropertyType() Type { return TypeScene }

// AddChild links a node into the scene.
func (s *Scene) AddChild(n *Node) error { return s.addRef(refChildren, n) }

// RemoveChild unlinks a node from the scene. The node is not disposed.
func (s *Scene) RemoveChild(n *Node) error { return s.removeRef(refChildren, n) }

// Children returns the scene's nodes in attachment order.
func (s *Scene) Children() []*Node {
	refs := s.refs(refChildren)
	out := make([]*Node, 0, len(refs))
	for _, r := range refs {
		if n, ok := r.(*Node); ok {
			out = append(out, n)
		}
	}
	return out
}

// Node is a transform in the scene hierarchy. It may carry a mesh and
// arbitrarily many child nodes.
type Node struct {
	extensible
}

// NewNode creates a node and registers it with g.
func NewNode(g *graph.Graph, name string) *Node {
	n := &Node{}
	n.name = name
	g.Register(n)
	return n
}

// PropertyType returns TypeNode.
func (n *Node) PropertyType() Type { return TypeNode }

// SetMesh points the node at a mesh, replacing any previous one.
// Passing nil clears the reference.
func (n *Node) SetMesh(m *Mesh) error {
	if m == nil {
		return n.setRef(refMesh, nil)
	}
	return n.setRef(refMesh, m)
}

// Mesh returns the node's mesh, or nil.
func (n *Node) Mesh() *Mesh {
	if m, ok := n.ref(refMesh).(*Mesh); ok {
		return m
	}
	return nil
}

// AddChild links a child node under this node.
func (n *Node) AddChild(child *Node) error { return n.addRef(refChildren, child) }

// RemoveChild unlinks a child node. The child is not disposed.
func (n *Node) RemoveChild(child *Node) error { return n.removeRef(refChildren, child) }

// Children returns the node's children in attachment order.
func (n *Node) Children() []*Node {
	refs := n.refs(refChildren)
	out := make([]*Node, 0, len(refs))
	for _, r := range refs {
		if c, ok := r.(*Node); ok {
			out = append(out, c)
		}
	}
	return out
}

// Mesh is renderable geometry. It may reference a material.
type Mesh struct {
	extensible
}

// NewMesh creates a mesh and registers it with g.
func NewMesh(g *graph.Graph, name string) *Mesh {
	m := &Mesh{}
	m.name = name
	g.Register(m)
	return m
}

// PropertyType returns TypeMesh.
func (m *Mesh) PropertyType() Type { return TypeMesh }

// SetMaterial points the mesh at a material, replacing any previous one.
// Passing nil clears the reference.
func (m *Mesh) SetMaterial(mat *Material) error {
	if mat == nil {
		return m.setRef(refMaterial, nil)
	}
	return m.setRef(refMaterial, mat)
}

// Material returns the mesh's material, or nil.
func (m *Mesh) Material() *Material {
	if mat, ok := m.ref(refMaterial).(*Material); ok {
		return mat
	}
	return nil
}

// Material describes surface appearance via texture references. A texture
// may be shared by arbitrarily many materials; setting it on a second
// material never copies the underlying node.
type Material struct {
	extensible
}

// NewMaterial creates a material and registers it with g.
func NewMaterial(g *graph.Graph, name string) *Material {
	m := &Material{}
	m.name = name
	g.Register(m)
	return m
}

// PropertyType returns TypeMaterial.
func (m *Material) PropertyType() Type { return TypeMaterial }

// SetBaseColorTexture points the material at a base color texture,
// replacing any previous one. Passing nil clears the reference.
func (m *Material) SetBaseColorTexture(t *Texture) error {
	if t == nil {
		return m.setRef(refBaseColorTexture, nil)
	}
	return m.setRef(refBaseColorTexture, t)
}

// BaseColorTexture returns the material's base color texture, or nil.
func (m *Material) BaseColorTexture() *Texture {
	if t, ok := m.ref(refBaseColorTexture).(*Texture); ok {
		return t
	}
	return nil
}

// SetNormalTexture points the material at a normal texture, replacing any
// previous one. Passing nil clears the reference.
func (m *Material) SetNormalTexture(t *Texture) error {
	if t == nil {
		return m.setRef(refNormalTexture, nil)
	}
	return m.setRef(refNormalTexture, t)
}

// NormalTexture returns the material's normal texture, or nil.
func (m *Material) NormalTexture() *Texture {
	if t, ok := m.ref(refNormalTexture).(*Texture); ok {
		return t
	}
	return nil
}

// Clone produces a new material in the same graph that shares this
// material's referenced textures and attached extensions. The extras map is
// shallow-copied; the textures themselves are not duplicated.
func (m *Material) Clone() (Property, error) {
	if m.Disposed() {
		return nil, graph.ErrInvalidState
	}

	clone := NewMaterial(m.Graph(), m.name)
	if m.extras != nil {
		clone.extras = maps.Clone(m.extras)
	}
	if t := m.BaseColorTexture(); t != nil {
		if err := clone.SetBaseColorTexture(t); err != nil {
			return nil, err
		}
	}
	if t := m.NormalTexture(); t != nil {
		if err := clone.SetNormalTexture(t); err != nil {
			return nil, err
		}
	}
	for _, ext := range m.ListExtensions() {
		if tok, ok := LookupExtension(ext.ExtensionID()); ok {
			if err := clone.SetExtension(tok, ext); err != nil {
				return nil, err
			}
		}
	}
	return clone, nil
}

// Texture is an image resource shared by reference across materials.
type Texture struct {
	extensible
}

// NewTexture creates a texture and registers it with g.
func NewTexture(g *graph.Graph, name string) *Texture {
	t := &Texture{}
	t.name = name
	g.Register(t)
	return t
}

// PropertyType returns TypeTexture.
func (t *Texture) PropertyType() Type { return TypeTexture }
