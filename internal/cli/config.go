package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences read from the config file.
//
// The file lives at ~/.config/gltfx/config.toml (or $XDG_CONFIG_HOME/gltfx/
// config.toml) and every field is optional:
//
//	style = "mono"
//	cache_dir = "/tmp/gltfx-cache"
//	redis_addr = "localhost:6379"
//	mongo_uri = "mongodb://localhost:27017"
//	listen = ":8080"
type Config struct {
	// Style is the default render style (color or mono).
	Style string `toml:"style"`

	// CacheDir overrides the artifact cache directory.
	CacheDir string `toml:"cache_dir"`

	// RedisAddr enables the Redis cache backend when set.
	RedisAddr string `toml:"redis_addr"`

	// MongoURI enables the MongoDB snapshot store when set.
	MongoURI string `toml:"mongo_uri"`

	// Listen is the address for the serve command.
	Listen string `toml:"listen"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Style:  "color",
		Listen: ":8080",
	}
}

// LoadConfig reads the config file at path. An empty path uses the default
// location. A missing file is not an error and yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if cfg.Style == "" {
		cfg.Style = "color"
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	return cfg, nil
}

// configDir returns the config directory using the XDG standard.
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
