package graph

import "github.com/google/uuid"

// Link is an owned, directed edge between two nodes, tagged with a semantic
// name (the attachment's logical role) and a kind identifying the role
// category. A link is owned exclusively by its parent node; the child has no
// ownership stake but is discoverable via [Graph.ListParents].
//
// Links are compared by identity, not by (parent, child, name) equality:
// two structurally identical links created separately are distinct edges.
type Link struct {
	graph  *Graph
	name   string
	kind   string
	parent uuid.UUID
	child  uuid.UUID
}

// Name returns the semantic role of the attachment (e.g. "baseColorTexture").
func (l *Link) Name() string { return l.name }

// Kind returns the role category tag, typically the child's property type.
func (l *Link) Kind() string { return l.kind }

// ParentID returns the stable identifier of the owning node.
func (l *Link) ParentID() uuid.UUID { return l.parent }

// ChildID returns the stable identifier of the target node.
func (l *Link) ChildID() uuid.UUID { return l.child }

// Parent resolves the owning node, or nil if it has been disposed.
func (l *Link) Parent() Node { return l.graph.nodes[l.parent] }

// Child resolves the target node, or nil if it has been disposed.
func (l *Link) Child() Node { return l.graph.nodes[l.child] }
