package simfolio

// Ticker is the short identifier of a stock, e.g. "AAPL".
type Ticker string

func (t Ticker) String() string { return string(t) }

// catalog is the fixed set of tickers a Portfolio draws from.
var catalog = [...]Ticker{
	"MSFT", "AAPL", "AMZN", "GOOGL", "TSLA", "META", "NVDA", "FINTUAL",
}

// Catalog returns the tickers a Portfolio can hold, in catalog order.
// The returned slice is a copy, the catalog itself cannot be modified.
func Catalog() []Ticker {
	tickers := make([]Ticker, len(catalog))
	copy(tickers, catalog[:])
	return tickers
}

// InCatalog reports whether t is one of the catalog tickers.
func InCatalog(t Ticker) bool {
	for _, c := range catalog {
		if c == t {
			return true
		}
	}
	return false
}
