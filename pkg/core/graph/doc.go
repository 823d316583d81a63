// Package graph implements the reference graph underlying the asset
// document model: typed resource nodes connected by named, directed links
// that represent uses/references relationships.
//
// The [Graph] is the single source of truth for "who references whom". It
// alone creates and destroys links, keeping the parent/child index globally
// consistent: the index never contains a link whose parent or child is
// disposed, and any operation that would produce such a state fails fast.
//
// # Lifecycle
//
// Nodes are created by constructors that call [Graph.Register], mutated by
// link/unlink operations, and destroyed by [Graph.Dispose], which is
// irreversible. Detaching (removing incoming links, see
// [Graph.DisconnectParents]) leaves a node alive with all of its own
// children; disposing severs links in both directions and invalidates the
// node permanently.
//
// The core never infers liveness from reference counts: removing a node's
// last incoming link does not dispose it. Callers that want automatic
// reclamation should layer a reachability sweep on top of this package.
//
// # Concurrency
//
// All operations are synchronous, bounded, and run on one logical thread of
// control. There is no internal locking; callers must not mutate a graph
// concurrently, and no operation may be re-entered on a node that is itself
// mid-disposal.
package graph
