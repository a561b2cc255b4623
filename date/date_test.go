package date

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		year  int
		month time.Month
		day   int
	}{
		{"2022-01-01", 2022, time.January, 1},
		{"2020-02-29", 2020, time.February, 29},
		{"1999-12-31", 1999, time.December, 31},
		{"0001-01-01", 1, time.January, 1},
		{"2024-07-15", 2024, time.July, 15},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.year, got.Year())
			assert.Equal(t, tt.month, got.Month())
			assert.Equal(t, tt.day, got.Day())
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{
		"2022-13-01",
		"2022-00-10",
		"2021-02-29",
		"2022-04-31",
		"0000-01-01",
		"not-a-date",
		"2022/01/01",
		"2022-1-1",
		"22-01-01",
		"2022-01-01T00:00:00Z",
		" 2022-01-01",
		"",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)

			var formatErr *InvalidFormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, input, formatErr.Value)
			assert.True(t, errors.Is(err, ErrInvalidFormat))
			assert.Equal(t, input+" is not a valid date. Invalid date format. Please use the format yyyy-mm-dd.", err.Error())
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, New(2020, time.January, 1), MustParse("2020-01-01"))
	assert.Panics(t, func() { MustParse("2020-1-1") })
}

func TestNew_Normalizes(t *testing.T) {
	assert.Equal(t, New(2021, time.March, 1), New(2021, time.February, 29))
	assert.Equal(t, New(2020, time.December, 31), New(2021, time.January, 0))
}

func TestDate_JSON(t *testing.T) {
	d := New(2022, time.January, 5)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2022-01-05"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)

	err = json.Unmarshal([]byte(`"2022-13-05"`), &back)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
