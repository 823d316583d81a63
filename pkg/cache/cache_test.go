package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	t.Run("RoundTrip", func(t *testing.T) {
		if err := c.Set(ctx, "svg-key", []byte("<svg/>"), time.Hour); err != nil {
			t.Fatalf("Set: %v", err)
		}
		data, hit, err := c.Get(ctx, "svg-key")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !hit || !bytes.Equal(data, []byte("<svg/>")) {
			t.Errorf("Get = %q, %v", data, hit)
		}
	})

	t.Run("Miss", func(t *testing.T) {
		if _, hit, err := c.Get(ctx, "absent"); err != nil || hit {
			t.Errorf("Get(absent) = hit %v, err %v", hit, err)
		}
	})

	t.Run("Expired", func(t *testing.T) {
		if err := c.Set(ctx, "stale", []byte("old"), -time.Second); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if _, hit, _ := c.Get(ctx, "stale"); hit {
			t.Error("expired entry returned as hit")
		}
	})

	t.Run("NoExpiry", func(t *testing.T) {
		// Zero TTL means no expiration, not instant expiry.
		if err := c.Set(ctx, "pinned", []byte("keep"), 0); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if _, hit, _ := c.Get(ctx, "pinned"); !hit {
			t.Error("zero-TTL entry reported as miss")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := c.Set(ctx, "gone", []byte("x"), 0); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := c.Delete(ctx, "gone"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, hit, _ := c.Get(ctx, "gone"); hit {
			t.Error("deleted entry returned as hit")
		}
		// Deleting an absent key is not an error.
		if err := c.Delete(ctx, "gone"); err != nil {
			t.Errorf("second Delete: %v", err)
		}
	})
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	if h3 := Hash([]byte("world")); h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestArtifactKey(t *testing.T) {
	k := NewDefaultKeyer()

	base := k.ArtifactKey("hash123", "svg", ArtifactKeyOpts{Style: "simple"})
	if base != k.ArtifactKey("hash123", "svg", ArtifactKeyOpts{Style: "simple"}) {
		t.Error("ArtifactKey should be deterministic")
	}

	variants := []string{
		k.ArtifactKey("hash456", "svg", ArtifactKeyOpts{Style: "simple"}),
		k.ArtifactKey("hash123", "dot", ArtifactKeyOpts{Style: "simple"}),
		k.ArtifactKey("hash123", "svg", ArtifactKeyOpts{Style: "simple", Detailed: true}),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collided with base key", i)
		}
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "store:abc:")

	key := scoped.ArtifactKey("hash123", "svg", ArtifactKeyOpts{})
	want := "store:abc:" + inner.ArtifactKey("hash123", "svg", ArtifactKeyOpts{})
	if key != want {
		t.Errorf("scoped key = %q, want %q", key, want)
	}

	// A nil inner keyer falls back to the default.
	fallback := NewScopedKeyer(nil, "p:")
	if fallback.ArtifactKey("h", "svg", ArtifactKeyOpts{}) != "p:"+inner.ArtifactKey("h", "svg", ArtifactKeyOpts{}) {
		t.Error("nil inner keyer did not fall back to default")
	}
}
