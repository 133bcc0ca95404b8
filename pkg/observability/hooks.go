// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about figure layout, rendering and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    stats := &observability.CacheCounter{}
//	    observability.SetCacheHooks(stats)
//	    // ... run application
//	    fmt.Println(stats.Snapshot())
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLayoutStart(ctx, chart, kind)
//	// ... compute the figure ...
//	observability.Pipeline().OnLayoutComplete(ctx, chart, panels, duration, err)
package observability

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Cache key types reported to CacheHooks.
const (
	KeyTypeLayout   = "layout"
	KeyTypeArtifact = "artifact"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the chart pipeline.
type PipelineHooks interface {
	// Layout events
	OnLayoutStart(ctx context.Context, chart, kind string)
	OnLayoutComplete(ctx context.Context, chart string, panels int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, chart string, formats []string)
	OnRenderComplete(ctx context.Context, chart string, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, string, string)                            {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, int, time.Duration, error)      {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Counting Implementation
// =============================================================================

// CacheCounter counts cache events. The zero value is ready to use and safe
// for concurrent use.
type CacheCounter struct {
	hits    atomic.Int64
	misses  atomic.Int64
	sets    atomic.Int64
	written atomic.Int64
}

func (c *CacheCounter) OnCacheHit(context.Context, string)  { c.hits.Add(1) }
func (c *CacheCounter) OnCacheMiss(context.Context, string) { c.misses.Add(1) }

func (c *CacheCounter) OnCacheSet(_ context.Context, _ string, size int) {
	c.sets.Add(1)
	c.written.Add(int64(size))
}

// CacheStats is a point-in-time copy of a CacheCounter.
type CacheStats struct {
	Hits    int64
	Misses  int64
	Sets    int64
	Written int64 // bytes
}

func (s CacheStats) String() string {
	return fmt.Sprintf("%d hits, %d misses, %d writes (%d bytes)", s.Hits, s.Misses, s.Sets, s.Written)
}

// Snapshot returns the current counts.
func (c *CacheCounter) Snapshot() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Sets:    c.sets.Load(),
		Written: c.written.Load(),
	}
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}
