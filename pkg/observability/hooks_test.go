package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLayoutStart(ctx, "diet", "pie")
	p.OnLayoutComplete(ctx, "diet", 3, time.Second, nil)
	p.OnRenderStart(ctx, "diet", []string{"svg"})
	p.OnRenderComplete(ctx, "diet", []string{"svg"}, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, KeyTypeLayout)
	c.OnCacheMiss(ctx, KeyTypeArtifact)
	c.OnCacheSet(ctx, KeyTypeArtifact, 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &CacheCounter{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
}

func TestCacheCounter(t *testing.T) {
	ctx := context.Background()
	var c CacheCounter

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.OnCacheHit(ctx, KeyTypeLayout)
			c.OnCacheMiss(ctx, KeyTypeArtifact)
			c.OnCacheSet(ctx, KeyTypeArtifact, 100)
		}()
	}
	wg.Wait()

	got := c.Snapshot()
	want := CacheStats{Hits: 10, Misses: 10, Sets: 10, Written: 1000}
	if got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
	if s := got.String(); s != "10 hits, 10 misses, 10 writes (1000 bytes)" {
		t.Errorf("String() = %q", s)
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }
