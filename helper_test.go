package simfolio

import (
	"testing"

	"github.com/rs/zerolog"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// queuePricer returns its prices in order, one per call, whatever the ticker.
type queuePricer struct {
	t      *testing.T
	prices []Money
	calls  []Ticker
}

func newQueuePricer(t *testing.T, prices ...float64) *queuePricer {
	q := &queuePricer{t: t}
	for _, p := range prices {
		q.prices = append(q.prices, USD(p))
	}
	return q
}

func (q *queuePricer) Price(t Ticker) Money {
	q.t.Helper()
	if len(q.prices) == 0 {
		q.t.Fatalf("no price left for %s", t)
	}
	p := q.prices[0]
	q.prices = q.prices[1:]
	q.calls = append(q.calls, t)
	return p
}

// portfolioOf builds a Portfolio holding exactly tickers, priced by pricer.
func portfolioOf(pricer Pricer, tickers ...Ticker) *Portfolio {
	p := &Portfolio{currency: "USD", logger: zerolog.Nop()}
	for _, t := range tickers {
		p.stocks = append(p.stocks, NewStock(t, pricer))
	}
	return p
}
