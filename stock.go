package simfolio

// Stock is a member of a Portfolio. Its identity never changes, its price is
// asked to its Pricer on every call.
type Stock struct {
	ticker Ticker
	pricer Pricer
}

func NewStock(ticker Ticker, pricer Pricer) Stock {
	return Stock{ticker: ticker, pricer: pricer}
}

func (s Stock) Ticker() Ticker { return s.ticker }

// Price returns a fresh price, nothing is cached.
func (s Stock) Price() Money { return s.pricer.Price(s.ticker) }
