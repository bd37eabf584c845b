package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alphapapa/graph.el/pkg/cache"
	"github.com/alphapapa/graph.el/pkg/errors"
	"github.com/alphapapa/graph.el/pkg/io"
	"github.com/alphapapa/graph.el/pkg/layout"
	"github.com/alphapapa/graph.el/pkg/observability"
	"github.com/alphapapa/graph.el/pkg/render"
	"github.com/alphapapa/graph.el/pkg/tree"
)

// Runner executes pipeline stages with caching. It holds no per-run state and
// is safe for concurrent use as long as its cache is.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a runner. A nil cache disables caching, a nil keyer uses
// DefaultKeyer and a nil logger uses log.Default.
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
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute reads the tree at path, lays it out and renders every requested
// format.
func (r *Runner) Execute(ctx context.Context, path string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	result := &Result{}

	start := time.Now()
	forest, err := r.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	result.Forest = forest
	result.Stats.ReadTime = time.Since(start)
	r.Logger.Debug("read tree", "path", path, "nodes", tree.Count(forest), "duration", result.Stats.ReadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.run(ctx, result, opts)
}

// ExecuteForest runs the layout and render stages on an already decoded forest.
func (r *Runner) ExecuteForest(ctx context.Context, forest []tree.Node, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := tree.Validate(forest); err != nil {
		return nil, err
	}
	return r.run(ctx, &Result{Forest: forest}, opts)
}

func (r *Runner) run(ctx context.Context, result *Result, opts Options) (*Result, error) {
	forest := result.Forest
	hash, err := treeHash(forest)
	if err != nil {
		return nil, err
	}
	result.TreeHash = hash

	start := time.Now()
	shapes, hit, err := r.LayoutWithCacheInfo(ctx, forest, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Shapes = shapes
	result.Stats.LayoutTime = time.Since(start)
	result.CacheInfo.LayoutHit = hit
	result.Stats.Stats = layout.Measure(forest, shapes, opts.Layout)
	r.Logger.Debug("computed layout",
		"shapes", len(shapes),
		"width", result.Stats.Width,
		"height", result.Stats.Height,
		"cached", hit,
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, forest, shapes, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)
	result.CacheInfo.RenderHit = hit
	r.Logger.Debug("rendered outputs", "formats", opts.Formats, "cached", hit, "duration", result.Stats.RenderTime)

	return result, nil
}

// Read decodes the tree file at path.
func (r *Runner) Read(ctx context.Context, path string) ([]tree.Node, error) {
	hooks := observability.Pipeline()
	hooks.OnReadStart(ctx, path)
	start := time.Now()

	forest, err := io.ImportFile(path)
	count := 0
	if err == nil {
		count = tree.Count(forest)
	}
	hooks.OnReadComplete(ctx, path, count, time.Since(start), err)
	return forest, err
}

// LayoutWithCacheInfo returns the shapes for forest and whether they came from
// the cache.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, forest []tree.Node, opts Options) ([]render.Shape, bool, error) {
	hash, err := treeHash(forest)
	if err != nil {
		return nil, false, err
	}
	key := r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var shapes []render.Shape
			if err := json.Unmarshal(data, &shapes); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return shapes, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, tree.Count(forest))
	start := time.Now()
	shapes := layout.Layout(forest, opts.Layout)
	hooks.OnLayoutComplete(ctx, len(shapes), time.Since(start))

	if data, err := json.Marshal(shapes); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
			r.Logger.Debug("cache write failed", "key", key, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}
	return shapes, false, nil
}

// Layout is LayoutWithCacheInfo without the hit flag.
func (r *Runner) Layout(ctx context.Context, forest []tree.Node, opts Options) ([]render.Shape, error) {
	shapes, _, err := r.LayoutWithCacheInfo(ctx, forest, opts)
	return shapes, err
}

// RenderWithCacheInfo renders every requested format, serving from the cache
// where possible. The flag reports whether all formats were cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, forest []tree.Node, shapes []render.Shape, opts Options) (map[string][]byte, bool, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}
	hash, err := treeHash(forest)
	if err != nil {
		return nil, false, err
	}
	layoutKey := r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts())

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true
	hooks := observability.Pipeline()

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(layoutKey, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		allCached = false

		hooks.OnRenderStart(ctx, format)
		start := time.Now()
		data, err := RenderFormat(ctx, forest, shapes, format, opts)
		hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return artifacts, allCached, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func treeHash(forest []tree.Node) (string, error) {
	h, err := cache.HashJSON(forest)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash tree")
	}
	return h, nil
}
