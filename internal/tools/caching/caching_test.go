package caching

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rates struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func compressed(t *testing.T, value any) []byte {
	raw, err := json.Marshal(value)
	require.NoError(t, err)

	deflated, err := deflate(raw)
	require.NoError(t, err)

	return deflated
}

func TestDeflate(t *testing.T) {
	raw := []byte(`{"base":"USD","rates":{"EUR":0.92}}`)

	deflated, err := deflate(raw)
	require.NoError(t, err)

	inflated, err := inflate(deflated)
	require.NoError(t, err)
	assert.Equal(t, raw, inflated)

	_, err = inflate([]byte("not deflated"))
	assert.Error(t, err)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	value := rates{Base: "USD", Rates: map[string]float64{"EUR": 0.92}}

	t.Run("should put deflated json under the namespace", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewRedis[rates](db, "exchange-rates")

		mock.ExpectSet("exchange-rates:USD", compressed(t, value), time.Hour).SetVal("OK")

		err := store.Put(ctx, "USD", value, time.Hour)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should return engine errors on put", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewRedis[rates](db, "exchange-rates")

		mock.ExpectSet("exchange-rates:USD", compressed(t, value), time.Hour).SetErr(errors.New("readonly"))

		err := store.Put(ctx, "USD", value, time.Hour)

		assert.EqualError(t, err, "readonly")
	})

	t.Run("should get a stored value", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewRedis[rates](db, "exchange-rates")

		mock.ExpectGet("exchange-rates:USD").SetVal(string(compressed(t, value)))

		fetched, err := store.Get(ctx, "USD")

		require.NoError(t, err)
		assert.Equal(t, value, fetched)
	})

	t.Run("should report missing keys as a miss", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewRedis[rates](db, "exchange-rates")

		mock.ExpectGet("exchange-rates:USD").RedisNil()

		_, err := store.Get(ctx, "USD")

		assert.ErrorIs(t, err, ErrMiss)
	})

	t.Run("should return engine errors on get", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewRedis[rates](db, "exchange-rates")

		mock.ExpectGet("exchange-rates:USD").SetErr(errors.New("connection refused"))

		_, err := store.Get(ctx, "USD")

		assert.EqualError(t, err, "connection refused")
	})

	t.Run("should fail on corrupted values", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewRedis[rates](db, "exchange-rates")

		mock.ExpectGet("exchange-rates:USD").SetVal("garbage")

		_, err := store.Get(ctx, "USD")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrMiss)
		assert.Contains(t, err.Error(), "decompressing exchange-rates:USD")
	})
}
