package graph

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

var (
	// ErrInvalidOperation is returned by [Graph.Link] when an endpoint belongs
	// to a different graph instance or has already been disposed. Links may
	// only exist between two live nodes of the same graph.
	ErrInvalidOperation = errors.New("invalid graph operation")

	// ErrInvalidState is returned when a mutating operation is invoked on a
	// node that has already been disposed. Disposal is irreversible.
	ErrInvalidState = errors.New("node already disposed")

	// ErrInvalidLinkEndpoint is returned by [Graph.Validate] when a registered
	// link references a node that is missing from the arena. This indicates
	// graph corruption.
	ErrInvalidLinkEndpoint = errors.New("invalid link endpoint")
)

// Graph is the owning registry of all nodes and links. It is the only
// component allowed to create or destroy links, which guarantees global
// consistency of the parent/child index.
//
// Nodes live in an arena keyed by stable UUID identifiers; links store
// identifiers rather than node pointers, so disposal is an index
// invalidation and no cyclic ownership arises from bidirectional references.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes    map[uuid.UUID]Node
	order    []uuid.UUID         // insertion order of live nodes
	outgoing map[uuid.UUID][]*Link // parent ID -> links it owns, creation order
	incoming map[uuid.UUID][]*Link // child ID -> links targeting it, creation order
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[uuid.UUID]Node),
		outgoing: make(map[uuid.UUID][]*Link),
		incoming: make(map[uuid.UUID][]*Link),
	}
}

// Register adds a node to the graph's arena, assigning it a fresh stable
// identifier. It is called by node constructors; a node is a member of
// exactly one graph for its entire lifetime.
func (g *Graph) Register(n Node) {
	b := n.base()
	b.graph = g
	b.id = uuid.New()
	g.nodes[b.id] = n
	g.order = append(g.order, b.id)
}

// Link creates and registers a new outgoing link on parent pointing at child.
// The name carries the attachment's logical role and kind tags the role
// category (typically the child's property type).
//
// Returns ErrInvalidOperation if either node belongs to a different graph
// instance or is already disposed. Multiple links with the same name between
// the same pair are permitted; callers that need at-most-one semantics must
// unlink the previous edge first.
func (g *Graph) Link(name, kind string, parent, child Node) (*Link, error) {
	if err := g.checkMember("parent", parent); err != nil {
		return nil, err
	}
	if err := g.checkMember("child", child); err != nil {
		return nil, err
	}

	l := &Link{
		graph:  g,
		name:   name,
		kind:   kind,
		parent: parent.GraphID(),
		child:  child.GraphID(),
	}
	g.outgoing[l.parent] = append(g.outgoing[l.parent], l)
	g.incoming[l.child] = append(g.incoming[l.child], l)
	return l, nil
}

// Unlink removes a single link from the index. The link is matched by
// identity, so structurally identical edges are unaffected. No error is
// returned if the link was already removed.
func (g *Graph) Unlink(l *Link) {
	if l == nil || l.graph != g {
		return
	}
	g.outgoing[l.parent] = slices.DeleteFunc(g.outgoing[l.parent], func(o *Link) bool { return o == l })
	g.incoming[l.child] = slices.DeleteFunc(g.incoming[l.child], func(o *Link) bool { return o == l })
}

// DisconnectParents removes every incoming link of n whose parent satisfies
// match. A nil match removes all incoming links. The node's own outgoing
// links are untouched.
//
// Returns ErrInvalidOperation if n belongs to a different graph, or
// ErrInvalidState if n is already disposed. The index is only mutated once
// both checks pass.
func (g *Graph) DisconnectParents(n Node, match func(parent Node) bool) error {
	if err := g.checkLive(n); err != nil {
		return err
	}

	id := n.GraphID()
	for _, l := range slices.Clone(g.incoming[id]) {
		if match == nil || match(g.nodes[l.parent]) {
			g.Unlink(l)
		}
	}
	return nil
}

// DisconnectChildren removes every outgoing link owned by n, releasing its
// children. The children themselves stay alive; cascading disposal is
// caller-initiated only.
//
// Returns ErrInvalidOperation if n belongs to a different graph, or
// ErrInvalidState if n is already disposed.
func (g *Graph) DisconnectChildren(n Node) error {
	if err := g.checkLive(n); err != nil {
		return err
	}

	for _, l := range slices.Clone(g.outgoing[n.GraphID()]) {
		g.Unlink(l)
	}
	return nil
}

// Dispose permanently invalidates n. Its outgoing links are released first
// (so children may become candidates for caller-driven cascade), then every
// incoming link is severed, then the node is excised from the arena and
// marked disposed. Any further graph operation on n fails with
// ErrInvalidState.
//
// Disposal severs incoming links unconditionally, even when live parents
// still reference the node.
func (g *Graph) Dispose(n Node) error {
	if err := g.checkLive(n); err != nil {
		return err
	}

	id := n.GraphID()
	for _, l := range slices.Clone(g.outgoing[id]) {
		g.Unlink(l)
	}
	for _, l := range slices.Clone(g.incoming[id]) {
		g.Unlink(l)
	}

	delete(g.nodes, id)
	delete(g.outgoing, id)
	delete(g.incoming, id)
	g.order = slices.DeleteFunc(g.order, func(o uuid.UUID) bool { return o == id })
	n.base().disposed = true
	return nil
}

// ListParents returns the distinct parent nodes holding a link to n, in
// link-creation order. Returns nil for a disposed or unknown node.
func (g *Graph) ListParents(n Node) []Node {
	return g.distinct(g.incoming[n.GraphID()], func(l *Link) uuid.UUID { return l.parent })
}

// ListChildren returns the distinct child nodes n holds a link to, in
// link-creation order. Returns nil for a disposed or unknown node.
func (g *Graph) ListChildren(n Node) []Node {
	return g.distinct(g.outgoing[n.GraphID()], func(l *Link) uuid.UUID { return l.child })
}

// ParentLinks returns a copy of the links targeting n, in creation order.
func (g *Graph) ParentLinks(n Node) []*Link {
	return slices.Clone(g.incoming[n.GraphID()])
}

// ChildLinks returns a copy of the links owned by n, in creation order.
func (g *Graph) ChildLinks(n Node) []*Link {
	return slices.Clone(g.outgoing[n.GraphID()])
}

// Nodes returns all live nodes in creation order.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// NodeCount returns the number of live nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// LinkCount returns the number of live links in the graph.
func (g *Graph) LinkCount() int {
	count := 0
	for _, links := range g.outgoing {
		count += len(links)
	}
	return count
}

// Validate checks index integrity and returns nil if valid. Every registered
// link must point at two nodes that are present in the arena; the disposal
// path excises links before nodes, so a violation indicates corruption.
//
// Returns ErrInvalidLinkEndpoint naming the first offending link.
func (g *Graph) Validate() error {
	check := func(links map[uuid.UUID][]*Link) error {
		for _, ls := range links {
			for _, l := range ls {
				if _, ok := g.nodes[l.parent]; !ok {
					return fmt.Errorf("link %q: parent missing: %w", l.name, ErrInvalidLinkEndpoint)
				}
				if _, ok := g.nodes[l.child]; !ok {
					return fmt.Errorf("link %q: child missing: %w", l.name, ErrInvalidLinkEndpoint)
				}
			}
		}
		return nil
	}
	if err := check(g.outgoing); err != nil {
		return err
	}
	return check(g.incoming)
}

// distinct collects the first occurrence of each endpoint in link order.
func (g *Graph) distinct(links []*Link, pick func(*Link) uuid.UUID) []Node {
	var nodes []Node
	seen := make(map[uuid.UUID]bool, len(links))
	for _, l := range links {
		id := pick(l)
		if seen[id] {
			continue
		}
		seen[id] = true
		if n, ok := g.nodes[id]; ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// checkMember verifies that a prospective link endpoint is a live member of
// this graph. Failures are reported as ErrInvalidOperation.
func (g *Graph) checkMember(role string, n Node) error {
	if n == nil {
		return fmt.Errorf("%s is nil: %w", role, ErrInvalidOperation)
	}
	if n.Graph() != g {
		return fmt.Errorf("%s belongs to a different graph: %w", role, ErrInvalidOperation)
	}
	if n.Disposed() {
		return fmt.Errorf("%s is disposed: %w", role, ErrInvalidOperation)
	}
	return nil
}

// checkLive verifies that n is this graph's live node before a lifecycle
// mutation. Cross-graph nodes fail with ErrInvalidOperation, disposed nodes
// with ErrInvalidState.
func (g *Graph) checkLive(n Node) error {
	if n == nil {
		return fmt.Errorf("node is nil: %w", ErrInvalidOperation)
	}
	if n.Graph() != g {
		return fmt.Errorf("node belongs to a different graph: %w", ErrInvalidOperation)
	}
	if n.Disposed() {
		return ErrInvalidState
	}
	return nil
}
