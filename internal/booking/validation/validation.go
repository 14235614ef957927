package validation

import (
	"time"

	"bitbucket.org/crgw/booking-quotes/internal/booking"
	"bitbucket.org/crgw/booking-quotes/internal/booking/document"
	"bitbucket.org/crgw/booking-quotes/internal/rules"
)

const (
	languageCodePath      = "source/languageCode"
	optionsQuotaPath      = "optionsQuota"
	parametersPath        = "Configuration/Parameters/Parameter"
	searchTypePath        = "SearchType"
	allowedHotelCountPath = "AllowedHotelCount"
	destinationsPath      = "AvailDestinations/Destination"
	startDatePath         = "StartDate"
	endDatePath           = "EndDate"
	currencyPath          = "Currency"
	nationalityPath       = "Nationality"
	marketPath            = "Markets/Market"
	allowedGuestsPath     = "AllowedRoomGuestCount"
	allowedChildrenPath   = "AllowedChildCountPerRoom"
	roomsPath             = "Paxes"
	passengersPath        = "Pax"
	markupPath            = "Markup"
)

type Options struct {
	// EnforceEarliestStart turns on the start date lead time rule.
	EnforceEarliestStart bool

	// Now is used by the lead time rule, defaults to time.Now.
	Now func() time.Time
}

// Pipeline validates booking request documents against a rule set.
type Pipeline struct {
	rules   rules.RuleSet
	options Options
}

func New(ruleSet rules.RuleSet, options Options) *Pipeline {
	if options.Now == nil {
		options.Now = time.Now
	}

	return &Pipeline{
		rules:   ruleSet,
		options: options,
	}
}

// run holds the values extracted so far from a single document.
type run struct {
	rules   rules.RuleSet
	root    document.Node
	request booking.ValidatedRequest

	allowedHotelCount int
}

type step func(r *run) error

// steps returns the validators in the order they are applied. The order
// decides which error a caller sees for a document with several problems.
func (p *Pipeline) steps() []step {
	steps := []step{
		(*run).languageCode,
		(*run).optionsQuota,
		(*run).credentials,
		(*run).searchType,
		(*run).allowedHotels,
		(*run).destinations,
		(*run).startDate,
		(*run).endDate,
		(*run).stayLength,
	}

	if p.options.EnforceEarliestStart {
		now := p.options.Now
		steps = append(steps, func(r *run) error {
			return r.earliestStart(now())
		})
	}

	return append(steps,
		(*run).currency,
		(*run).nationality,
		(*run).market,
		(*run).rooms,
		(*run).markup,
	)
}

// Validate runs every validator over the document and stops at the first
// failure, which is returned as *errors.Fault.
func (p *Pipeline) Validate(root document.Node) (*booking.ValidatedRequest, error) {
	r := &run{
		rules: p.rules,
		root:  root,
	}

	for _, validate := range p.steps() {
		err := validate(r)
		if err != nil {
			return nil, err
		}
	}

	return &r.request, nil
}
