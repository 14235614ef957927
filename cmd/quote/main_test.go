package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"bitbucket.org/crgw/booking-quotes/internal/booking/orchestrator"
	"bitbucket.org/crgw/booking-quotes/internal/booking/pricing"
	"bitbucket.org/crgw/booking-quotes/internal/exchangerates"
	"bitbucket.org/crgw/booking-quotes/internal/rules"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingQuoter struct{}

func (failingQuoter) Process(context.Context, []byte, *zerolog.Logger) (orchestrator.Response, error) {
	return orchestrator.Response{}, errors.New("snapshot missing")
}

func newQuotes(t *testing.T) *orchestrator.Orchestrator {
	quotes, err := orchestrator.New(orchestrator.Options{
		Rules: rules.Default(),
		Rates: exchangerates.NewSnapshot("USD", map[string]float64{"USD": 1, "EUR": 0.9, "GBP": 0.8}),
		Faker: pricing.NewFaker(5),
	})
	require.NoError(t, err)

	return quotes
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	logs := &bytes.Buffer{}
	log := zerolog.New(logs)

	t.Run("should print quotes for the sample document", func(t *testing.T) {
		input, err := os.Open("testdata/sample.xml")
		require.NoError(t, err)
		defer input.Close()

		stdout := &bytes.Buffer{}
		code := run(ctx, newQuotes(t), input, stdout, &log)

		assert.Equal(t, 0, code)
		assert.True(t, strings.HasPrefix(stdout.String(), "["))
		assert.Contains(t, stdout.String(), `"hotelCodeSupplier":"HTL100"`)
		assert.Contains(t, stdout.String(), `"hotelCodeSupplier":"HTL200"`)
		assert.Contains(t, stdout.String(), `"markup":12.5`)
	})

	t.Run("should print the fault document", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		code := run(ctx, newQuotes(t), strings.NewReader("<AvailRQ/>"), stdout, &log)

		assert.Equal(t, 0, code)
		assert.Contains(t, stdout.String(), "<applicationErrors>")
		assert.Contains(t, stdout.String(), "<description>Missing required parameters</description>")
		assert.Contains(t, stdout.String(), "<httpStatusCode>500</httpStatusCode>")
	})

	t.Run("should print nothing on failures", func(t *testing.T) {
		logs.Reset()
		stdout := &bytes.Buffer{}

		code := run(ctx, failingQuoter{}, strings.NewReader("<AvailRQ/>"), stdout, &log)

		assert.Equal(t, 1, code)
		assert.Empty(t, stdout.String())
		assert.Contains(t, logs.String(), "snapshot missing")
	})
}

func TestOpenInput(t *testing.T) {
	input, err := openInput("-")
	require.NoError(t, err)
	assert.NoError(t, input.Close())

	input, err = openInput("testdata/sample.xml")
	require.NoError(t, err)
	assert.NoError(t, input.Close())

	_, err = openInput("testdata/missing.xml")
	assert.Error(t, err)
}
