package exchangerates

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bitbucket.org/crgw/booking-quotes/internal/tools/caching"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryEngine struct {
	values   map[string][]byte
	ttls     map[string]time.Duration
	storeErr error
	sync.Mutex
}

func newMemoryEngine() *memoryEngine {
	return &memoryEngine{
		values: map[string][]byte{},
		ttls:   map[string]time.Duration{},
	}
}

func (m *memoryEngine) Store(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.Lock()
	defer m.Unlock()

	if m.storeErr != nil {
		return m.storeErr
	}

	m.values[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *memoryEngine) Fetch(_ context.Context, key string) ([]byte, error) {
	m.Lock()
	defer m.Unlock()

	value, ok := m.values[key]
	if !ok {
		return nil, caching.ErrMiss
	}

	return value, nil
}

type countingFetcher struct {
	snapshot *Snapshot
	err      error
	calls    int
}

func (c *countingFetcher) Latest(_ context.Context, _ string) (*Snapshot, error) {
	c.calls++
	return c.snapshot, c.err
}

func TestLoadSnapshot(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	logger := zerolog.New(out)
	fresh := NewSnapshot("USD", map[string]float64{"EUR": 0.92})

	t.Run("should fetch without cache", func(t *testing.T) {
		fetcher := &countingFetcher{snapshot: fresh}

		snapshot, err := LoadSnapshot(ctx, fetcher, "USD", LoadOptions{}, &logger)

		require.NoError(t, err)
		assert.Equal(t, fresh, snapshot)
		assert.Equal(t, 1, fetcher.calls)
	})

	t.Run("should wrap fetch errors", func(t *testing.T) {
		fetcher := &countingFetcher{err: errors.New("connection refused")}

		_, err := LoadSnapshot(ctx, fetcher, "USD", LoadOptions{}, &logger)

		assert.EqualError(t, err, "loading exchange rates for USD: connection refused")
	})

	t.Run("should store and then reuse a cached snapshot", func(t *testing.T) {
		engine := newMemoryEngine()
		hits := 0
		options := LoadOptions{
			Cache:      NewCache(engine),
			TTL:        time.Hour,
			OnCacheHit: func() { hits++ },
		}
		fetcher := &countingFetcher{snapshot: fresh}

		first, err := LoadSnapshot(ctx, fetcher, "USD", options, &logger)
		require.NoError(t, err)
		second, err := LoadSnapshot(ctx, fetcher, "USD", options, &logger)
		require.NoError(t, err)

		assert.Equal(t, 1, fetcher.calls)
		assert.Equal(t, 1, hits)
		assert.Equal(t, time.Hour, engine.ttls["exchange-rates:USD"])
		assert.Equal(t, first.Base(), second.Base())
		assert.Equal(t, 0.92, second.Rate("EUR"))
	})

	t.Run("should keep the fresh snapshot when caching fails", func(t *testing.T) {
		engine := newMemoryEngine()
		engine.storeErr = errors.New("readonly")
		out.Reset()

		snapshot, err := LoadSnapshot(ctx, &countingFetcher{snapshot: fresh}, "USD", LoadOptions{
			Cache: NewCache(engine),
			TTL:   time.Hour,
		}, &logger)

		require.NoError(t, err)
		assert.Equal(t, fresh, snapshot)
		assert.Contains(t, out.String(), "Failed to cache exchange rates")
	})

	t.Run("should fetch when the cached record is corrupted", func(t *testing.T) {
		engine := newMemoryEngine()
		engine.values["exchange-rates:USD"] = []byte("garbage")
		fetcher := &countingFetcher{snapshot: fresh}
		out.Reset()

		snapshot, err := LoadSnapshot(ctx, fetcher, "USD", LoadOptions{
			Cache: NewCache(engine),
			TTL:   time.Hour,
		}, &logger)

		require.NoError(t, err)
		assert.Equal(t, fresh, snapshot)
		assert.Equal(t, 1, fetcher.calls)
		assert.Contains(t, out.String(), "Failed to read cached exchange rates")
	})
}
