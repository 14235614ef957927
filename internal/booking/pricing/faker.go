package pricing

import "github.com/brianvoe/gofakeit/v6"

const idPattern = "[A-Z]{2}#[0-9]{2}"

// Generator produces the synthetic parts of a quote.
type Generator interface {
	ID() string
	Net() float64
	Pick(values []string) string
}

// Faker is a Generator backed by gofakeit. It is safe for concurrent use.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker seeds the generator, zero picks a random seed.
func NewFaker(seed int64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
	}
}

func (f *Faker) ID() string {
	return f.faker.Regex(idPattern)
}

func (f *Faker) Net() float64 {
	return f.faker.Float64Range(0, 1)
}

func (f *Faker) Pick(values []string) string {
	return f.faker.RandomString(values)
}
