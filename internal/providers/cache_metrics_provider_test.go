package providers

import (
	"errors"
	"testing"
	"time"

	"folio/internal/structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingMetrics struct {
	hits   int
	misses int
}

func (m *countingMetrics) IncRequestsTotal(_ string, _ int)                  {}
func (m *countingMetrics) ObserveRequestDuration(_ string, _ time.Duration)  {}
func (m *countingMetrics) IncCacheHits()                                     { m.hits++ }
func (m *countingMetrics) IncCacheMisses()                                   { m.misses++ }
func (m *countingMetrics) IncUpstreamRequests(_ string, _ int)               {}
func (m *countingMetrics) ObserveUpstreamDuration(_ string, _ time.Duration) {}

type mapCache struct {
	data map[string][]byte
}

func newMapCache() *mapCache { return &mapCache{data: make(map[string][]byte)} }

func (m *mapCache) Get(key string) ([]byte, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mapCache) Set(key string, value []byte, _ time.Duration) {
	m.data[key] = value
}

type identityCompressor struct {
	compressErr   error
	decompressErr error
}

func (c *identityCompressor) Compress(val []byte) ([]byte, error) {
	if c.compressErr != nil {
		return nil, c.compressErr
	}
	return val, nil
}

func (c *identityCompressor) Decompress(val []byte) ([]byte, error) {
	if c.decompressErr != nil {
		return nil, c.decompressErr
	}
	return val, nil
}

func TestMetricsCacheProvider_CountsHitsAndMisses(t *testing.T) {
	inner := newMapCache()
	metrics := &countingMetrics{}
	c := &MetricsCacheProvider{inner: inner, metrics: metrics}

	_, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, metrics.misses)

	c.Set("k", []byte("v"), time.Minute)
	_, ok = c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, 1, metrics.misses)
}

func TestCompressedCacheProvider_Roundtrip(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)

	c := &CompressedCacheProvider{inner: newMapCache(), compressor: compressor}

	payload := []byte(`{"username":"octocat","totalContributions":1234}`)
	c.Set("k", payload, time.Minute)

	val, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, payload, val)
}

func TestCompressedCacheProvider_UnreadableEntryIsMiss(t *testing.T) {
	inner := newMapCache()
	inner.Set("k", []byte("garbage"), time.Minute)
	c := &CompressedCacheProvider{
		inner:      inner,
		compressor: &identityCompressor{decompressErr: errors.New("corrupt")},
	}

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCompressedCacheProvider_CompressFailureDropsWrite(t *testing.T) {
	inner := newMapCache()
	c := &CompressedCacheProvider{
		inner:      inner,
		compressor: &identityCompressor{compressErr: errors.New("boom")},
	}

	c.Set("k", []byte("v"), time.Minute)
	assert.Empty(t, inner.data)
}

func TestNewInstrumentedCacheProvider_DisabledReturnsNoop(t *testing.T) {
	conf := &structures.Config{Cache: structures.CacheConfig{Enabled: false}}
	c := NewInstrumentedCacheProvider(conf, &cacheTestLogger{}, &countingMetrics{}, &identityCompressor{})
	assert.IsType(t, &noopCache{}, c)
}

func TestNewInstrumentedCacheProvider_EnabledWrapsWithMetrics(t *testing.T) {
	conf := &structures.Config{Cache: structures.CacheConfig{Enabled: true, Size: 1}}
	c := NewInstrumentedCacheProvider(conf, &cacheTestLogger{}, &countingMetrics{}, &identityCompressor{})
	assert.IsType(t, &MetricsCacheProvider{}, c)
}
