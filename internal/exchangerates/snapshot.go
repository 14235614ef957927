package exchangerates

import "maps"

// Snapshot holds the rates fetched once at startup. It is read-only and safe
// to share between requests.
type Snapshot struct {
	base  string
	rates map[string]float64
}

func NewSnapshot(base string, rates map[string]float64) *Snapshot {
	return &Snapshot{
		base:  base,
		rates: maps.Clone(rates),
	}
}

func (s *Snapshot) Base() string {
	return s.base
}

// Rate returns 0 for unknown currencies.
func (s *Snapshot) Rate(currency string) float64 {
	return s.rates[currency]
}

// Convert divides amount by the currency rate. Amounts in the base currency
// or in currencies without a positive rate are returned unchanged.
func (s *Snapshot) Convert(amount float64, currency string) float64 {
	if currency == s.base {
		return amount
	}

	rate := s.Rate(currency)
	if rate > 0 {
		return amount / rate
	}

	return amount
}

// Record is the cached form of a snapshot.
type Record struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (s *Snapshot) Record() Record {
	return Record{
		Base:  s.base,
		Rates: maps.Clone(s.rates),
	}
}
