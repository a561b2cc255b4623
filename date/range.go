package date

// DaysPerYear is the fixed year length used to turn a day count into years.
const DaysPerYear = 365

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Days returns the number of calendar days from From to To.
// A single-day range has zero days.
func (r Range) Days() int {
	// day numbers, a time.Duration saturates after about 292 years
	return int(r.To.number() - r.From.number())
}

// Years returns Days expressed in years of DaysPerYear days.
func (r Range) Years() float64 { return float64(r.Days()) / DaysPerYear }

// DaysBetween returns the absolute number of days between a and b.
func DaysBetween(a, b Date) int { return NewRange(a, b).Days() }
