package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bitbucket.org/crgw/booking-quotes/internal/booking/document"
	"bitbucket.org/crgw/booking-quotes/internal/booking/errors"
	"bitbucket.org/crgw/booking-quotes/internal/booking/pricing"
	"bitbucket.org/crgw/booking-quotes/internal/booking/validation"
	"bitbucket.org/crgw/booking-quotes/internal/rules"
	"bitbucket.org/crgw/booking-quotes/internal/schema"
	"bitbucket.org/crgw/booking-quotes/internal/tools/slowlog"
	"github.com/rs/zerolog"
)

const (
	ContentTypeJSON = "application/json; charset=utf-8"
	ContentTypeXML  = "application/xml; charset=utf-8"
)

type DocumentLoader interface {
	Load(raw []byte) (document.Node, error)
}

// Recorder receives the outcome of every processed document.
type Recorder interface {
	AddQuotes(count int)
	IncFaults(faultType string)
	IncFailures()
}

type Options struct {
	Rules rules.RuleSet

	// Loader - defaults to document.Loader
	Loader DocumentLoader

	Rates pricing.RateProvider
	Faker pricing.Generator

	EnforceEarliestStart bool

	// Now - defaults to time.Now
	Now func() time.Time

	// Recorder - optional
	Recorder Recorder
}

// Response is what a caller sends back for one document: quotes as JSON or
// a fault as XML.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
	Fault       *errors.Fault
}

type Orchestrator struct {
	loader    DocumentLoader
	pipeline  *validation.Pipeline
	generator *pricing.QuoteGenerator
	rates     pricing.RateProvider
	recorder  Recorder
}

func New(options Options) (*Orchestrator, error) {
	if options.Rates == nil {
		return nil, fmt.Errorf("orchestrator needs a rate provider")
	}

	if options.Faker == nil {
		return nil, fmt.Errorf("orchestrator needs a synthetic data generator")
	}

	if options.Loader == nil {
		options.Loader = document.Loader{}
	}

	return &Orchestrator{
		loader: options.Loader,
		pipeline: validation.New(options.Rules, validation.Options{
			EnforceEarliestStart: options.EnforceEarliestStart,
			Now:                  options.Now,
		}),
		generator: pricing.New(options.Rules, options.Faker),
		rates:     options.Rates,
		recorder:  options.Recorder,
	}, nil
}

// Process answers one raw request document. Faults raised by the document
// content become a Response, anything else is returned as an error.
func (o *Orchestrator) Process(ctx context.Context, raw []byte, logger *zerolog.Logger) (Response, error) {
	err := ctx.Err()
	if err != nil {
		return Response{}, err
	}

	slowLog := slowlog.CreateLogger(logger)

	slowLog.Start("load")
	root, err := o.loader.Load(raw)
	slowLog.Stop("load")
	if err != nil {
		return o.fault(errors.New(errors.MalformedDocument, "Not well-formed XML"), err, logger)
	}

	slowLog.Start("validate")
	request, err := o.pipeline.Validate(root)
	slowLog.Stop("validate")
	if err != nil {
		fault, ok := errors.AsFault(err)
		if !ok {
			o.failed()
			return Response{}, fmt.Errorf("validating document: %w", err)
		}

		return o.fault(fault, nil, logger)
	}

	slowLog.Start("generate")
	quotes := o.generator.Generate(request.Destinations, request.Markup, request.Currency, o.rates)
	slowLog.Stop("generate")

	body, err := json.Marshal(schema.QuotesResponse(quotes))
	if err != nil {
		o.failed()
		return Response{}, fmt.Errorf("encoding quotes: %w", err)
	}

	logger.Info().
		Str("searchType", string(request.SearchType)).
		Int("companyId", request.Credentials.CompanyID()).
		Int("quotes", len(quotes)).
		Msg("Quotes generated")

	if o.recorder != nil {
		o.recorder.AddQuotes(len(quotes))
	}

	return Response{
		StatusCode:  http.StatusOK,
		ContentType: ContentTypeJSON,
		Body:        body,
	}, nil
}

func (o *Orchestrator) fault(fault *errors.Fault, cause error, logger *zerolog.Logger) (Response, error) {
	body, err := schema.NewApplicationErrors(fault).Marshal()
	if err != nil {
		o.failed()
		return Response{}, fmt.Errorf("encoding fault: %w", err)
	}

	event := logger.Warn().
		Str("type", fault.Kind.String()).
		Int("httpStatusCode", fault.HTTPStatus)
	if cause != nil {
		event = event.Err(cause)
	}
	event.Msg(fault.Message)

	if o.recorder != nil {
		o.recorder.IncFaults(fault.Kind.String())
	}

	return Response{
		StatusCode:  fault.HTTPStatus,
		ContentType: ContentTypeXML,
		Body:        body,
		Fault:       fault,
	}, nil
}

func (o *Orchestrator) failed() {
	if o.recorder != nil {
		o.recorder.IncFailures()
	}
}
