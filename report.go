package simfolio

import (
	"fmt"

	"github.com/etnz/simfolio/date"
	"github.com/google/uuid"
)

// HoldingLine is one stock of a Report, priced at both valuations.
type HoldingLine struct {
	Ticker         Ticker
	Initial, Final Money
}

func (h HoldingLine) Performance() Performance { return NewPerformance(h.Initial, h.Final) }

func (h HoldingLine) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ticker", h.Ticker)
	w.Append("initial", h.Initial)
	w.Append("final", h.Final)
	w.Append("profit", h.Performance().Percent())
	return w.MarshalJSON()
}

// Report details a simulated holding period: the figures printed by
// ProfitBetween and ProfitAnnualized, with the price of every stock.
type Report struct {
	ID         string
	Start, End date.Date
	Days       int // absolute number of days between Start and End
	Holdings   []HoldingLine
	Initial    Money // sum of the holdings initial prices
	Final      Money // sum of the holdings final prices
	Profit     Percent
	Annualized *Percent // nil when Days is zero
}

// Report validates start and end, values the portfolio twice and returns
// the detailed result. Unlike ProfitAnnualized, a zero-day period is not an
// error: Annualized is left nil.
func (p *Portfolio) Report(start, end string) (*Report, error) {
	from, err := date.Parse(start)
	if err != nil {
		return nil, err
	}
	to, err := date.Parse(end)
	if err != nil {
		return nil, err
	}

	initial, final := p.Quotes(), p.Quotes()
	r := &Report{
		ID:       uuid.NewString(),
		Start:    from,
		End:      to,
		Days:     date.DaysBetween(from, to),
		Holdings: make([]HoldingLine, len(initial)),
		Initial:  p.total(initial),
		Final:    p.total(final),
	}
	for i := range initial {
		r.Holdings[i] = HoldingLine{Ticker: initial[i].Ticker, Initial: initial[i].Price, Final: final[i].Price}
	}

	perf := r.Performance()
	r.Profit = perf.Percent()
	if r.Days > 0 {
		annualized, err := perf.Annualized(r.Years())
		if err != nil {
			return nil, fmt.Errorf("annualizing report: %w", err)
		}
		r.Annualized = &annualized
	}
	p.logger.Debug().Str("report", r.ID).Int("days", r.Days).Stringer("profit", r.Profit).Msg("report computed")
	return r, nil
}

func (r *Report) Performance() Performance { return NewPerformance(r.Initial, r.Final) }

// Years is Days expressed in years of 365 days.
func (r *Report) Years() float64 { return float64(r.Days) / date.DaysPerYear }

func (r *Report) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("start", r.Start)
	w.Append("end", r.End)
	w.Append("days", r.Days)
	w.Append("holdings", r.Holdings)
	w.Append("initial", r.Initial)
	w.Append("final", r.Final)
	w.Append("profit", r.Profit)
	w.Optional("annualized", r.Annualized)
	return w.MarshalJSON()
}
