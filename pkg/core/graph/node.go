package graph

import "github.com/google/uuid"

// Node is the unit of graph membership. It owns zero or more outgoing links
// to child nodes and is the target of zero or more incoming links from
// parent nodes; incoming links are owned by the parent side.
//
// The interface is closed: implementations must embed [GraphNode], which is
// how a node acquires its identity and graph backref during [Graph.Register].
type Node interface {
	// GraphID returns the node's opaque stable identifier, unique within its
	// owning graph for the node's lifetime.
	GraphID() uuid.UUID

	// Graph returns the owning graph. Every node belongs to exactly one
	// graph instance; cross-graph operations are a programming error.
	Graph() *Graph

	// Disposed reports whether the node has been permanently invalidated.
	// A disposed node holds no links and rejects further graph operations.
	Disposed() bool

	base() *GraphNode
}

// GraphNode is the embeddable base for all graph members. The zero value is
// inert until registered with a graph; constructors are expected to call
// [Graph.Register] before returning the node.
type GraphNode struct {
	graph    *Graph
	id       uuid.UUID
	disposed bool
}

// GraphID returns the node's stable identifier within its owning graph.
func (n *GraphNode) GraphID() uuid.UUID { return n.id }

// Graph returns the owning graph, or nil before registration.
func (n *GraphNode) Graph() *Graph { return n.graph }

// Disposed reports whether the node has been disposed.
func (n *GraphNode) Disposed() bool { return n.disposed }

func (n *GraphNode) base() *GraphNode { return n }
