package simfolio

import (
	"errors"
	"math"
)

// ErrEmptyPeriod is returned when annualizing a return over zero days.
var ErrEmptyPeriod = errors.New("cannot annualize a return over a zero-day period")

// Performance holds the starting and the ending value of a holding period.
type Performance struct {
	Start, End Money
}

func NewPerformance(start, end Money) Performance {
	return Performance{
		Start: start,
		End:   end,
	}
}

func (p Performance) Change() Money {
	return p.End.Sub(p.Start)
}

// Percent returns the cumulative return: (End - Start) / Start * 100.
func (p Performance) Percent() Percent {
	return Percent(100 * p.Change().Ratio(p.Start))
}

// Annualized returns the compound yearly rate equivalent to the cumulative
// return over years: ((End/Start)^(1/years) - 1) * 100.
func (p Performance) Annualized(years float64) (Percent, error) {
	if years == 0 {
		return 0, ErrEmptyPeriod
	}
	growth := p.End.Ratio(p.Start)
	return Percent((math.Pow(growth, 1/years) - 1) * 100), nil
}
