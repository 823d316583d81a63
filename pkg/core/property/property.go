package property

import (
	"errors"
	"fmt"

	"github.com/robertoranon/gltf-transform/pkg/core/graph"
)

// ErrNotImplemented is returned by Clone on property kinds that have not
// supplied an override. Cloning is a contract obligation on every concrete
// resource kind, not a core algorithm.
var ErrNotImplemented = errors.New("clone not implemented")

// Type identifies the kind of a property node. The Root kind is structurally
// special: root links survive [Property.Detach], anchoring live resources.
type Type string

// Property kinds.
const (
	TypeRoot      Type = "Root"
	TypeScene     Type = "Scene"
	TypeNode      Type = "Node"
	TypeMesh      Type = "Mesh"
	TypeMaterial  Type = "Material"
	TypeTexture   Type = "Texture"
	TypeExtension Type = "Extension"
)

// Property is the typed façade every resource kind exposes over the graph:
// identity (name), opaque extras, and the lifecycle operations of its
// underlying graph node. Kinds embed the shared base and supply
// PropertyType; Clone must be overridden per kind.
type Property interface {
	graph.Node

	// PropertyType returns the kind tag, used among other things to
	// recognize Root during detach filtering.
	PropertyType() Type

	// Name returns the property's name. Names default to empty and are not
	// required to be unique; uniqueness is a downstream convention.
	Name() string

	// SetName updates the property's name.
	SetName(name string) error

	// Extras returns the opaque metadata blob. The graph never interprets it.
	Extras() map[string]any

	// SetExtras replaces the metadata blob wholesale.
	SetExtras(extras map[string]any) error

	// Detach removes all incoming links from every parent except Root. The
	// property stays alive and keeps all of its own children.
	Detach() error

	// Dispose permanently invalidates the property, severing all its links
	// in both directions.
	Dispose() error

	// ListParents returns every property currently holding any link to this
	// one, including Root when applicable. Callers filter by concrete kind.
	ListParents() []Property

	// Clone produces a node that shares (not copies) referenced resources.
	// Kinds without an override fail with ErrNotImplemented.
	Clone() (Property, error)
}

// base carries the behavior shared by all property kinds.
type base struct {
	graph.GraphNode
	name   string
	extras map[string]any
}

// Name returns the property's name.
func (b *base) Name() string { return b.name }

// SetName updates the property's name.
// Returns graph.ErrInvalidState if the property has been disposed.
func (b *base) SetName(name string) error {
	if b.Disposed() {
		return graph.ErrInvalidState
	}
	b.name = name
	return nil
}

// Extras returns the opaque metadata map. May be nil.
func (b *base) Extras() map[string]any { return b.extras }

// SetExtras replaces the metadata map wholesale. The entries are not
// graph-tracked; the map is held as an opaque blob with no ownership
// semantics.
func (b *base) SetExtras(extras map[string]any) error {
	if b.Disposed() {
		return graph.ErrInvalidState
	}
	b.extras = extras
	return nil
}

// Detach removes all non-Root incoming links. The node remains alive,
// reachable via the document root and any in-flight variable the caller
// holds, and still owns all of its own children.
func (b *base) Detach() error {
	return b.Graph().DisconnectParents(b, func(parent graph.Node) bool {
		p, ok := parent.(Property)
		return !ok || p.PropertyType() != TypeRoot
	})
}

// Dispose severs all links in both directions and permanently invalidates
// the node. Any further operation fails with graph.ErrInvalidState.
func (b *base) Dispose() error {
	return b.Graph().Dispose(b)
}

// ListParents returns the distinct parent properties in link-creation order.
func (b *base) ListParents() []Property {
	parents := b.Graph().ListParents(b)
	out := make([]Property, 0, len(parents))
	for _, p := range parents {
		if prop, ok := p.(Property); ok {
			out = append(out, prop)
		}
	}
	return out
}

// Clone fails with ErrNotImplemented; concrete kinds override it.
func (b *base) Clone() (Property, error) {
	return nil, fmt.Errorf("%w", ErrNotImplemented)
}

// checkRef validates a prospective child before any link list is touched,
// so ref mutations either fully apply or reject without partial state.
func (b *base) checkRef(child Property) error {
	if child == nil {
		return nil
	}
	if child.Graph() != b.Graph() {
		return fmt.Errorf("ref belongs to a different graph: %w", graph.ErrInvalidOperation)
	}
	if child.Disposed() {
		return fmt.Errorf("ref is disposed: %w", graph.ErrInvalidOperation)
	}
	return nil
}

// setRef points the named single-slot reference at child, replacing any
// existing link with that name. Passing nil clears the slot. The previous
// child is unlinked, never disposed.
func (b *base) setRef(name string, child Property) error {
	if b.Disposed() {
		return graph.ErrInvalidState
	}
	if err := b.checkRef(child); err != nil {
		return err
	}

	g := b.Graph()
	for _, l := range g.ChildLinks(b) {
		if l.Name() == name {
			g.Unlink(l)
		}
	}
	if child == nil {
		return nil
	}
	_, err := g.Link(name, string(child.PropertyType()), b, child)
	return err
}

// ref resolves the named single-slot reference, or nil when unset.
func (b *base) ref(name string) Property {
	for _, l := range b.Graph().ChildLinks(b) {
		if l.Name() == name {
			if p, ok := l.Child().(Property); ok {
				return p
			}
		}
	}
	return nil
}

// addRef appends child to the named list reference.
func (b *base) addRef(name string, child Property) error {
	if b.Disposed() {
		return graph.ErrInvalidState
	}
	if child == nil {
		return fmt.Errorf("ref is nil: %w", graph.ErrInvalidOperation)
	}
	if err := b.checkRef(child); err != nil {
		return err
	}
	_, err := b.Graph().Link(name, string(child.PropertyType()), b, child)
	return err
}

// removeRef unlinks the first occurrence of child from the named list
// reference. Removing an absent child is a no-op.
func (b *base) removeRef(name string, child Property) error {
	if b.Disposed() {
		return graph.ErrInvalidState
	}
	if child == nil {
		return nil
	}
	g := b.Graph()
	for _, l := range g.ChildLinks(b) {
		if l.Name() == name && l.ChildID() == child.GraphID() {
			g.Unlink(l)
			return nil
		}
	}
	return nil
}

// refs resolves the named list reference in attachment order.
func (b *base) refs(name string) []Property {
	var out []Property
	for _, l := range b.Graph().ChildLinks(b) {
		if l.Name() != name {
			continue
		}
		if p, ok := l.Child().(Property); ok {
			out = append(out, p)
		}
	}
	return out
}
