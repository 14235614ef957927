package exchangerates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bitbucket.org/crgw/booking-quotes/internal/tools/client"
	"bitbucket.org/crgw/booking-quotes/internal/tools/requesting"
	"github.com/google/go-querystring/query"
	"github.com/oapi-codegen/runtime"
	"github.com/rs/zerolog"
)

const DefaultURL = "https://api.apilayer.com/exchangerates_data/latest"

var (
	ErrUnsuccessful = errors.New("exchange rates service reported a failure")
	ErrMissingRates = errors.New("exchange rates response has no rates")
)

type latestParams struct {
	Base string `url:"base"`
}

type latestResponse struct {
	Success *bool              `json:"success"`
	Base    string             `json:"base"`
	Rates   map[string]float64 `json:"rates"`
	Error   *struct {
		Type string `json:"type"`
		Info string `json:"info"`
	} `json:"error"`
}

func (l latestResponse) errorMessage() string {
	if l.Error == nil {
		return "unknown error"
	}

	if l.Error.Info != "" {
		return l.Error.Info
	}

	return l.Error.Type
}

type Client struct {
	options *client.Options
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey string, logger *zerolog.Logger, optionFuncs ...client.OptionFunc) *Client {
	options := client.NewOptions(append([]client.OptionFunc{
		client.WithName("exchange-rates"),
		client.WithBaseURL(DefaultURL),
	}, optionFuncs...)...)

	return &Client{
		options: options,
		apiKey:  apiKey,
		http:    options.HTTPClient(logger),
	}
}

// Latest fetches the current rates relative to base.
func (c *Client) Latest(ctx context.Context, base string) (*Snapshot, error) {
	request, err := c.newRequest(ctx, base)
	if err != nil {
		return nil, err
	}

	response, err := requesting.RequestErrors(c.http.Do(request))
	if err != nil {
		return nil, fmt.Errorf("fetching exchange rates: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("reading exchange rates: %w", err)
	}

	var latest latestResponse
	err = json.Unmarshal(body, &latest)
	if err != nil {
		return nil, fmt.Errorf("decoding exchange rates: %w", err)
	}

	if latest.Success != nil && !*latest.Success {
		return nil, fmt.Errorf("%w: %s", ErrUnsuccessful, latest.errorMessage())
	}

	if len(latest.Rates) == 0 {
		return nil, ErrMissingRates
	}

	if latest.Base == "" {
		latest.Base = base
	}

	return NewSnapshot(latest.Base, latest.Rates), nil
}

func (c *Client) newRequest(ctx context.Context, base string) (*http.Request, error) {
	values, err := query.Values(latestParams{Base: base})
	if err != nil {
		return nil, err
	}

	separator := "?"
	if strings.Contains(c.options.BaseURL(), "?") {
		separator = "&"
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.options.BaseURL()+separator+values.Encode(), http.NoBody)
	if err != nil {
		return nil, err
	}

	apiKey, err := runtime.StyleParamWithLocation("simple", false, "apikey", runtime.ParamLocationHeader, c.apiKey)
	if err != nil {
		return nil, err
	}

	request.Header.Set("apikey", apiKey)
	request.Header.Set("Accept", "application/json")

	return request, nil
}
