package simfolio

import "math/rand/v2"

// Bounds of the two independent draws making a random price.
const (
	maxPriceUnits = 1000 // integer part drawn in [1, maxPriceUnits]
	maxPriceCents = 100  // cents part drawn in [1, maxPriceCents]
)

// Pricer gives the current price of a stock.
type Pricer interface {
	Price(Ticker) Money
}

// PricerFunc adapts a function to the Pricer interface.
type PricerFunc func(Ticker) Money

func (f PricerFunc) Price(t Ticker) Money { return f(t) }

// RandomPricer draws prices unrelated to any market: an integer part uniform
// in [1, 1000] plus a cents part uniform in [0.01, 1.00], rounded to the minor
// unit of the currency. Every call is an independent draw, the ticker is
// ignored.
//
// A RandomPricer is not safe for concurrent use.
type RandomPricer struct {
	rng      *rand.Rand
	currency string
}

// NewRandomPricer returns a Pricer drawing from rng, in currency.
// A nil rng uses a randomly seeded generator.
func NewRandomPricer(rng *rand.Rand, currency string) *RandomPricer {
	if rng == nil {
		rng = newUnseededRand()
	}
	return &RandomPricer{rng: rng, currency: currency}
}

func (p *RandomPricer) Price(Ticker) Money {
	units := int64(p.rng.IntN(maxPriceUnits)) + 1
	cents := int64(p.rng.IntN(maxPriceCents)) + 1
	return Cents(units*100+cents, p.currency).Round()
}
