package simfolio

import (
	"encoding/json"
	"fmt"
	"math"
)

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String formats the percentage with two decimals, e.g. "12.34%".
func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// IsFinite reports whether p is neither NaN nor infinite.
func (p Percent) IsFinite() bool {
	return !math.IsNaN(float64(p)) && !math.IsInf(float64(p), 0)
}

// MarshalJSON writes the percentage as a number rounded to 4 decimals.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.IsFinite() {
		return nil, fmt.Errorf("cannot marshal non finite percent %v", float64(p))
	}
	return json.Marshal(math.Round(float64(p)*1e4) / 1e4)
}
