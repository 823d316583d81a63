package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Style != "color" {
		t.Errorf("Style = %q, want %q", cfg.Style, "color")
	}
	if cfg.Listen != ":8080" {
		t.Errorf("Listen = %q, want %q", cfg.Listen, ":8080")
	}
	if cfg.RedisAddr != "" || cfg.MongoURI != "" {
		t.Error("backends should be unset by default")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Style != "color" {
		t.Errorf("missing file should yield defaults, got style %q", cfg.Style)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
style = "mono"
cache_dir = "/tmp/gltfx-test-cache"
redis_addr = "localhost:6379"
mongo_uri = "mongodb://localhost:27017"
listen = ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Style != "mono" {
		t.Errorf("Style = %q, want %q", cfg.Style, "mono")
	}
	if cfg.CacheDir != "/tmp/gltfx-test-cache" {
		t.Errorf("CacheDir = %q", cfg.CacheDir)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.Listen != ":9090" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`redis_addr = "localhost:6379"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Style != "color" {
		t.Errorf("unset style should default to color, got %q", cfg.Style)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("unset listen should default, got %q", cfg.Listen)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`style = [broken`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed config should fail to load")
	}
}
