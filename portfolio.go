package simfolio

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/etnz/simfolio/date"
	"github.com/rs/zerolog"
)

// Portfolio is a fixed set of distinct stocks drawn from the Catalog.
//
// Its value is never stored: each valuation prices every stock again.
type Portfolio struct {
	stocks   []Stock
	currency string
	logger   zerolog.Logger
}

type options struct {
	rng      *rand.Rand
	pricer   Pricer
	currency string
	logger   zerolog.Logger
}

// Option configures New.
type Option func(*options)

// WithRand sets the generator used to pick the stocks, and to price them
// unless WithPricer is also given.
func WithRand(rng *rand.Rand) Option { return func(o *options) { o.rng = rng } }

// WithPricer replaces the random prices.
func WithPricer(p Pricer) Option { return func(o *options) { o.pricer = p } }

// WithCurrency sets the currency of random prices and of the empty valuation.
func WithCurrency(code string) Option { return func(o *options) { o.currency = code } }

// WithLogger sets the logger receiving debug events. Logging is off by default.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.logger = l } }

// New returns a Portfolio of k distinct stocks, k uniform in [1, len(Catalog())].
func New(opts ...Option) *Portfolio {
	o := options{currency: DefaultCurrency, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = newUnseededRand()
	}
	if o.pricer == nil {
		o.pricer = NewRandomPricer(o.rng, o.currency)
	}

	tickers := sample(o.rng, Catalog())
	p := &Portfolio{
		stocks:   make([]Stock, 0, len(tickers)),
		currency: o.currency,
		logger:   o.logger,
	}
	names := make([]string, 0, len(tickers))
	for _, t := range tickers {
		p.stocks = append(p.stocks, NewStock(t, o.pricer))
		names = append(names, t.String())
	}
	p.logger.Debug().Strs("tickers", names).Msg("portfolio created")
	return p
}

// sample returns between 1 and len(tickers) of them, without replacement.
// tickers is reordered in place.
func sample(rng *rand.Rand, tickers []Ticker) []Ticker {
	k := rng.IntN(len(tickers)) + 1
	rng.Shuffle(len(tickers), func(i, j int) { tickers[i], tickers[j] = tickers[j], tickers[i] })
	return tickers[:k]
}

// Stocks returns the portfolio members in selection order.
func (p *Portfolio) Stocks() []Stock {
	stocks := make([]Stock, len(p.stocks))
	copy(stocks, p.stocks)
	return stocks
}

// Quote is the price of a stock at one valuation.
type Quote struct {
	Ticker Ticker
	Price  Money
}

// Quotes prices every stock once, in selection order.
func (p *Portfolio) Quotes() []Quote {
	quotes := make([]Quote, 0, len(p.stocks))
	for _, s := range p.stocks {
		quotes = append(quotes, Quote{Ticker: s.Ticker(), Price: s.Price()})
	}
	return quotes
}

// total sums quote prices.
func (p *Portfolio) total(quotes []Quote) Money {
	total := M(0, p.currency)
	for _, q := range quotes {
		total = total.Add(q.Price)
	}
	return total
}

// Value returns the sum of a fresh price of every stock.
func (p *Portfolio) Value() Money {
	v := p.total(p.Quotes())
	p.logger.Debug().Stringer("value", v).Msg("portfolio valued")
	return v
}

// performance values the portfolio twice, the start valuation first.
func (p *Portfolio) performance() Performance {
	initial := p.Value()
	final := p.Value()
	return NewPerformance(initial, final)
}

// ProfitBetween validates start and end, values the portfolio twice, and
// writes the cumulative profit:
//
//	Profit between 2022-01-01 and 2020-01-01: 12.34%
//
// The dates are only validated. An invalid date is returned as a
// *date.InvalidFormatError and nothing is written.
func (p *Portfolio) ProfitBetween(w io.Writer, start, end string) error {
	if _, err := date.Parse(start); err != nil {
		return err
	}
	if _, err := date.Parse(end); err != nil {
		return err
	}

	perf := p.performance()

	_, err := fmt.Fprintf(w, "Profit between %s and %s: %s\n", start, end, perf.Percent())
	return err
}

// ProfitAnnualized validates start and end, values the portfolio twice, and
// writes the cumulative then the annualized profit:
//
//	Profit since 2020-01-01: 12.34%
//	Annualized profit: 5.97%
//
// Years are the absolute number of days between the dates divided by 365, so
// the order of the dates does not matter. Equal dates return ErrEmptyPeriod.
// On any error nothing is written.
func (p *Portfolio) ProfitAnnualized(w io.Writer, start, end string) error {
	from, err := date.Parse(start)
	if err != nil {
		return err
	}
	to, err := date.Parse(end)
	if err != nil {
		return err
	}

	perf := p.performance()
	years := date.NewRange(from, to).Years()

	profit := perf.Percent()
	annualized, err := perf.Annualized(years)
	if err != nil {
		return fmt.Errorf("annualized profit since %s: %w", start, err)
	}

	_, err = fmt.Fprintf(w, "Profit since %s: %s\nAnnualized profit: %s\n", start, profit, annualized)
	return err
}
