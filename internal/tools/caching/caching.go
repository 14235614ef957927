package caching

import (
	"bytes"
	"compress/flate"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by engines and stores for keys that hold no value.
var ErrMiss = errors.New("cache miss")

type Engine interface {
	Store(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// Store keeps values of one type under a key namespace. Values are written
// as deflated JSON.
type Store[T any] struct {
	engine    Engine
	namespace string
}

func New[T any](engine Engine, namespace string) *Store[T] {
	return &Store[T]{
		engine:    engine,
		namespace: namespace,
	}
}

func NewRedis[T any](client redis.UniversalClient, namespace string) *Store[T] {
	return New[T](&RedisEngine{client: client}, namespace)
}

func (s *Store[T]) key(id string) string {
	return s.namespace + ":" + id
}

func deflate(uncompressed []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, err := flate.NewWriter(&buffer, flate.BestSpeed)
	if err != nil {
		return nil, err
	}

	_, err = writer.Write(uncompressed)
	if err != nil {
		return nil, err
	}

	err = writer.Close()
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func inflate(compressed []byte) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(compressed))
	defer reader.Close()

	var out bytes.Buffer
	_, err := out.ReadFrom(reader)
	if err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func (s *Store[T]) Put(ctx context.Context, id string, value T, ttl time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.key(id), err)
	}

	compressed, err := deflate(encoded)
	if err != nil {
		return fmt.Errorf("compressing %s: %w", s.key(id), err)
	}

	return s.engine.Store(ctx, s.key(id), compressed, ttl)
}

// Get returns ErrMiss when nothing is stored under id. Corrupted values are
// reported as errors so callers can tell them apart from misses.
func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	var value T

	compressed, err := s.engine.Fetch(ctx, s.key(id))
	if err != nil {
		return value, err
	}

	encoded, err := inflate(compressed)
	if err != nil {
		return value, fmt.Errorf("decompressing %s: %w", s.key(id), err)
	}

	err = json.Unmarshal(encoded, &value)
	if err != nil {
		return value, fmt.Errorf("decoding %s: %w", s.key(id), err)
	}

	return value, nil
}
