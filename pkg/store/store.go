// Package store provides named persistence for document snapshots.
//
// This package defines the storage interface for saving and loading
// serialized documents, with implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for shared deployments
//
// Snapshots are stored by name; saving under an existing name replaces the
// previous record. The store never interprets the snapshot beyond carrying
// it: rebuilding a live document is the io package's job.
package store

import (
	"context"
	"time"

	"github.com/robertoranon/gltf-transform/pkg/io"
)

// Record is a stored snapshot with its bookkeeping metadata.
type Record struct {
	Name      string      `json:"name" bson:"name"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
	Snapshot  io.Snapshot `json:"snapshot" bson:"snapshot"`
}

// Store is the persistence interface shared by all backends.
type Store interface {
	// Save stores a snapshot under name, replacing any previous record.
	Save(ctx context.Context, name string, snap io.Snapshot) error

	// Load retrieves the record stored under name.
	// Returns a SNAPSHOT_NOT_FOUND error when the name is unknown.
	Load(ctx context.Context, name string) (Record, error)

	// List returns all stored names in lexical order.
	List(ctx context.Context) ([]string, error)

	// Delete removes the record stored under name.
	// Deleting an unknown name is not an error.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}
