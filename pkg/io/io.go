// Package io reads and writes document snapshots. The core graph does not
// decide how it maps onto a file; this package owns that mapping and feeds
// structural data back through the document factory on import.
package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/robertoranon/gltf-transform/pkg/document"
	"github.com/robertoranon/gltf-transform/pkg/errors"
)

// MarshalJSON converts a document to indented JSON bytes.
// Properties are emitted in creation order for deterministic output.
func MarshalJSON(d *document.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON encodes a document as JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(d *document.Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromDocument(d)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a document to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(d *document.Document, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(d, f)
}

// ReadSnapshot decodes a JSON snapshot from r without rebuilding a
// document. The decoded snapshot keeps the file's property IDs, so its
// serialized form is stable across loads and safe to content-hash.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode snapshot")
	}
	return s, nil
}

// ReadJSON decodes a JSON snapshot from r and rebuilds the document.
func ReadJSON(r io.Reader) (*document.Document, error) {
	s, err := ReadSnapshot(r)
	if err != nil {
		return nil, err
	}
	return ToDocument(s)
}

// ImportSnapshot reads a JSON snapshot file as decoded, preserving the
// file's property IDs.
func ImportSnapshot(path string) (Snapshot, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Snapshot{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Snapshot{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSnapshot(f)
}

// ImportJSON reads a JSON snapshot file and rebuilds the document.
func ImportJSON(path string) (*document.Document, error) {
	s, err := ImportSnapshot(path)
	if err != nil {
		return nil, err
	}
	return ToDocument(s)
}
