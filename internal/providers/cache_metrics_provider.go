package providers

import (
	"folio/internal/structures"
	"time"
)

// MetricsCacheProvider wraps a CacheProviderInterface and increments
// hit/miss counters on every Get call.
type MetricsCacheProvider struct {
	inner   CacheProviderInterface
	metrics MetricsProviderInterface
}

func (c *MetricsCacheProvider) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	if ok {
		c.metrics.IncCacheHits()
	} else {
		c.metrics.IncCacheMisses()
	}
	return val, ok
}

func (c *MetricsCacheProvider) Set(key string, value []byte, ttl time.Duration) {
	c.inner.Set(key, value, ttl)
}

// CompressedCacheProvider zstd-compresses values before they reach the
// underlying cache. Contribution maps and project lists are the largest
// cached payloads and compress well as JSON.
type CompressedCacheProvider struct {
	inner      CacheProviderInterface
	compressor CompressorInterface
}

func (c *CompressedCacheProvider) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	if !ok {
		return nil, false
	}
	plain, err := c.compressor.Decompress(val)
	if err != nil {
		// entry is unreadable, treat as a miss
		return nil, false
	}
	return plain, true
}

func (c *CompressedCacheProvider) Set(key string, value []byte, ttl time.Duration) {
	compressed, err := c.compressor.Compress(value)
	if err != nil {
		return
	}
	c.inner.Set(key, compressed, ttl)
}

// NewInstrumentedCacheProvider creates the cache stack: freecache wrapped with
// compression, wrapped with metrics instrumentation. When cache is disabled,
// returns the plain noopCache without wrapping to avoid counting phantom
// cache misses.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface, compressor CompressorInterface) CacheProviderInterface {
	inner := NewCacheProvider(conf, logger)
	if !conf.Cache.Enabled {
		return inner
	}
	return &MetricsCacheProvider{
		inner:   &CompressedCacheProvider{inner: inner, compressor: compressor},
		metrics: metrics,
	}
}
