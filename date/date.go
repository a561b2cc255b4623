// Package date handles calendar dates with day-level granularity, as used to
// label the boundaries of a simulated holding period.
package date

import (
	"encoding/json"
	"errors"
	"time"
)

// Format is the only accepted textual representation of a date (ISO-8601 calendar date).
const Format = "2006-01-02"

// ErrInvalidFormat is matched by every error returned by Parse.
var ErrInvalidFormat = errors.New("Invalid date format. Please use the format yyyy-mm-dd.")

// InvalidFormatError reports a string that is not a valid yyyy-mm-dd date.
type InvalidFormatError struct {
	Value string // the offending input, verbatim
}

func (e *InvalidFormatError) Error() string {
	return e.Value + " is not a valid date. " + ErrInvalidFormat.Error()
}

// Is makes errors.Is(err, ErrInvalidFormat) true.
func (e *InvalidFormatError) Is(target error) bool { return target == ErrInvalidFormat }

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date as yyyy-mm-dd.
func (d Date) String() string { return d.time().Format(Format) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// number is the count of days since 1970-01-01.
func (d Date) number() int64 { return d.time().Unix() / secondsPerDay }

const secondsPerDay = 24 * 60 * 60

// Parse parses a strict yyyy-mm-dd date.
//
// Strings that do not match the layout, and well shaped strings naming a day
// that does not exist (2022-13-01, 2021-02-29, year 0000), all fail with an
// *InvalidFormatError carrying str.
func Parse(str string) (Date, error) {
	on, err := time.Parse(Format, str)
	if err != nil || on.Year() < 1 {
		return Date{}, &InvalidFormatError{Value: str}
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
