package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/robertoranon/gltf-transform/pkg/cache"
	"github.com/robertoranon/gltf-transform/pkg/document"
	gio "github.com/robertoranon/gltf-transform/pkg/io"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. It doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options, though each loaded document remains single-threaded.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → validate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	doc, snap, err := r.loadWithSnapshot(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Document = doc
	result.Snapshot = snap
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.PropertyCount = doc.Graph().NodeCount()
	result.Stats.LinkCount = doc.Graph().LinkCount()

	// Compute the snapshot hash for cache keys and API responses.
	if data, err := json.Marshal(snap); err == nil {
		result.SnapshotHash = cache.Hash(data)
	}

	r.Logger.Info("loaded document",
		"properties", result.Stats.PropertyCount,
		"links", result.Stats.LinkCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Validate
	validateStart := time.Now()
	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}
	result.Stats.ValidateTime = time.Since(validateStart)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, doc, result.SnapshotHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the document named by the options.
func (r *Runner) Load(ctx context.Context, opts Options) (*document.Document, error) {
	doc, _, err := r.loadWithSnapshot(ctx, opts)
	return doc, err
}

func (r *Runner) loadWithSnapshot(ctx context.Context, opts Options) (*document.Document, gio.Snapshot, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, gio.Snapshot{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, gio.Snapshot{}, err
	}

	if opts.Snapshot != nil {
		doc, err := gio.ToDocument(*opts.Snapshot)
		if err != nil {
			return nil, gio.Snapshot{}, err
		}
		return doc, *opts.Snapshot, nil
	}

	// Hash the snapshot as decoded from the file, not one re-derived from
	// the rebuilt document: rebuilding mints fresh property IDs, which
	// would change the hash on every load of identical content.
	snap, err := gio.ImportSnapshot(opts.Path)
	if err != nil {
		return nil, gio.Snapshot{}, err
	}
	doc, err := gio.ToDocument(snap)
	if err != nil {
		return nil, gio.Snapshot{}, err
	}
	return doc, snap, nil
}

// RenderWithCacheInfo renders artifacts with caching and returns cache hit info.
// The snapshotHash keys the cache; pass an empty hash to bypass caching.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, d *document.Document, snapshotHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	if snapshotHash == "" || opts.Refresh {
		artifacts, err := RenderDocument(d, opts)
		return artifacts, false, err
	}

	// Try to get all formats from cache.
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(snapshotHash, format, opts.ArtifactKeyOpts())
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil
	}

	rendered, err := RenderDocument(d, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(snapshotHash, format, opts.ArtifactKeyOpts())
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that renders without consulting the cache.
func (r *Runner) Render(ctx context.Context, d *document.Document, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, d, "", opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
