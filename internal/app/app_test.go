package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bitbucket.org/crgw/booking-quotes/internal/config"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `<AvailRQ>
	<Configuration><Parameters><Parameter username="partner" password="secret" CompanyID="42"/></Parameters></Configuration>
	<AllowedHotelCount>1</AllowedHotelCount>
	<AvailDestinations><Destination code="HTL1"/></AvailDestinations>
	<StartDate>2026-11-01</StartDate>
	<EndDate>2026-11-06</EndDate>
	<AllowedRoomGuestCount>2</AllowedRoomGuestCount>
	<AllowedChildCountPerRoom>0</AllowedChildCountPerRoom>
	<Paxes><Pax age="30"/></Paxes>
	<Markup>10</Markup>
</AvailRQ>`

func ratesServer(t *testing.T, status int, body string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

func testConfig(url string) config.Config {
	return config.Config{
		ExchangeRates: config.ExchangeRatesConfig{
			BaseCurrency: "USD",
			APIKey:       "key",
			URL:          url,
			Timeout:      time.Second,
		},
		RatesCache: config.RatesCacheConfig{TTL: time.Hour},
	}
}

func TestNew(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should wire the quote service", func(t *testing.T) {
		server := ratesServer(t, http.StatusOK, `{"success":true,"base":"USD","rates":{"USD":1,"EUR":0.9,"GBP":0.8}}`)

		application, err := New(ctx, testConfig(server.URL), &log)
		require.NoError(t, err)
		defer application.Close()

		response, err := application.Quotes.Process(ctx, []byte(document), &log)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, response.StatusCode)
		assert.Contains(t, string(response.Body), `"hotelCodeSupplier":"HTL1"`)
		assert.Contains(t, string(response.Body), `"exchange_rate":1`)
		assert.Equal(t, 1.0, testutil.ToFloat64(application.Metrics.QuotesTotal))
	})

	t.Run("should fail when rates can not be loaded", func(t *testing.T) {
		server := ratesServer(t, http.StatusUnauthorized, `{"message":"Invalid authentication credentials"}`)

		_, err := New(ctx, testConfig(server.URL), &log)

		assert.ErrorContains(t, err, "loading exchange rates for USD")
	})

	t.Run("should fail on invalid rule files", func(t *testing.T) {
		location := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(location, []byte("currencies: []\n"), 0o600))

		cfg := testConfig("http://127.0.0.1:0")
		cfg.RulesLocation = location

		_, err := New(ctx, cfg, &log)

		assert.Error(t, err)
	})

	t.Run("should fail on invalid cache uris", func(t *testing.T) {
		cfg := testConfig("http://127.0.0.1:0")
		cfg.RatesCache.RedisURI = "memcached://localhost"

		_, err := New(ctx, cfg, &log)

		assert.True(t, strings.HasPrefix(err.Error(), "connecting rates cache"))
	})
}
