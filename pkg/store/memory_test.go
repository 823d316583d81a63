package store

import (
	"context"
	"testing"

	"github.com/robertoranon/gltf-transform/pkg/document"
	"github.com/robertoranon/gltf-transform/pkg/errors"
	"github.com/robertoranon/gltf-transform/pkg/io"
)

func sampleSnapshot(name string) io.Snapshot {
	d := document.New()
	d.CreateMaterial(name)
	return io.FromDocument(d)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	t.Run("SaveAndLoad", func(t *testing.T) {
		if err := s.Save(ctx, "lantern", sampleSnapshot("brass")); err != nil {
			t.Fatalf("Save: %v", err)
		}
		rec, err := s.Load(ctx, "lantern")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if rec.Name != "lantern" {
			t.Errorf("Name = %q", rec.Name)
		}
		if rec.CreatedAt.IsZero() || rec.UpdatedAt.IsZero() {
			t.Error("timestamps not set")
		}

		// The stored snapshot rebuilds into a working document.
		doc, err := io.ToDocument(rec.Snapshot)
		if err != nil {
			t.Fatalf("ToDocument: %v", err)
		}
		if mats := doc.Materials(); len(mats) != 1 || mats[0].Name() != "brass" {
			t.Error("stored snapshot did not round-trip")
		}
	})

	t.Run("SaveReplaces", func(t *testing.T) {
		if err := s.Save(ctx, "lantern", sampleSnapshot("steel")); err != nil {
			t.Fatalf("Save: %v", err)
		}
		rec, err := s.Load(ctx, "lantern")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		doc, err := io.ToDocument(rec.Snapshot)
		if err != nil {
			t.Fatalf("ToDocument: %v", err)
		}
		if doc.Materials()[0].Name() != "steel" {
			t.Error("Save did not replace the previous snapshot")
		}
	})

	t.Run("LoadUnknown", func(t *testing.T) {
		_, err := s.Load(ctx, "absent")
		if !errors.Is(err, errors.ErrCodeSnapshotNotFound) {
			t.Errorf("Load(absent) = %v, want SNAPSHOT_NOT_FOUND", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		if err := s.Save(ctx, "aardvark", sampleSnapshot("a")); err != nil {
			t.Fatalf("Save: %v", err)
		}
		names, err := s.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(names) != 2 || names[0] != "aardvark" || names[1] != "lantern" {
			t.Errorf("List = %v, want [aardvark lantern]", names)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := s.Delete(ctx, "aardvark"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := s.Load(ctx, "aardvark"); !errors.Is(err, errors.ErrCodeSnapshotNotFound) {
			t.Error("deleted snapshot still loads")
		}
		// Deleting an unknown name is not an error.
		if err := s.Delete(ctx, "aardvark"); err != nil {
			t.Errorf("second Delete: %v", err)
		}
	})

	t.Run("InvalidName", func(t *testing.T) {
		if err := s.Save(ctx, "../escape", sampleSnapshot("x")); err == nil {
			t.Error("Save accepted a traversal name")
		}
	})
}
