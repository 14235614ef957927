package pricing

import (
	"bitbucket.org/crgw/booking-quotes/internal/booking"
	"bitbucket.org/crgw/booking-quotes/internal/rules"
	"bitbucket.org/crgw/booking-quotes/internal/schema"
)

type RateProvider interface {
	Rate(currency string) float64
	Convert(amount float64, currency string) float64
}

type QuoteGenerator struct {
	rules     rules.RuleSet
	generator Generator
}

func New(ruleSet rules.RuleSet, generator Generator) *QuoteGenerator {
	return &QuoteGenerator{
		rules:     ruleSet,
		generator: generator,
	}
}

// Generate prices every destination in the given order. One market is picked
// for the whole response.
func (q *QuoteGenerator) Generate(
	destinations []booking.Destination,
	markup float64,
	targetCurrency string,
	rates RateProvider,
) []schema.HotelQuote {
	market := q.generator.Pick(q.rules.Markets)

	quotes := make([]schema.HotelQuote, 0, len(destinations))
	for _, destination := range destinations {
		quotes = append(quotes, schema.HotelQuote{
			ID:                q.generator.ID(),
			HotelCodeSupplier: destination.Code,
			Market:            market,
			Price:             q.price(markup, targetCurrency, rates),
		})
	}

	return quotes
}

func (q *QuoteGenerator) price(markup float64, targetCurrency string, rates RateProvider) schema.Price {
	net := q.generator.Net()
	currency := q.generator.Pick(q.rules.Currencies)

	sellingPrice := net * (1 + markup/100)
	if currency != targetCurrency {
		sellingPrice = rates.Convert(sellingPrice, targetCurrency)
	}

	return schema.Price{
		MinimumSellingPrice: q.rules.Discount * sellingPrice,
		Net:                 net,
		Currency:            currency,
		SellingPrice:        sellingPrice,
		SellingCurrency:     targetCurrency,
		Markup:              markup,
		ExchangeRate:        rates.Rate(targetCurrency),
	}
}
