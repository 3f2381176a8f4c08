package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodRanges(t *testing.T) {
	first := YearMonth{2001, 1}

	assert.Equal(t, PeriodRange{YearMonth{2025, 1}, YearMonth{2025, 12}}, PeriodRangeOf(25, first))
	assert.Equal(t, PeriodRange{YearMonth{2025, 1}, YearMonth{2025, 6}}, FirstHalfPeriodRange(25, first))
	assert.Equal(t, PeriodRange{YearMonth{2025, 7}, YearMonth{2025, 12}}, SecondHalfPeriodRange(25, first))
}

func TestPeriodRangesWithOffsetStart(t *testing.T) {
	tests := []struct {
		name       string
		first      YearMonth
		period     int
		full       PeriodRange
		firstHalf  PeriodRange
		secondHalf PeriodRange
	}{
		{
			name:       "april start",
			first:      YearMonth{2001, 4},
			period:     25,
			full:       PeriodRange{YearMonth{2025, 4}, YearMonth{2026, 3}},
			firstHalf:  PeriodRange{YearMonth{2025, 4}, YearMonth{2025, 9}},
			secondHalf: PeriodRange{YearMonth{2025, 10}, YearMonth{2026, 3}},
		},
		{
			name:       "first half ends in december",
			first:      YearMonth{2010, 7},
			period:     3,
			full:       PeriodRange{YearMonth{2012, 7}, YearMonth{2013, 6}},
			firstHalf:  PeriodRange{YearMonth{2012, 7}, YearMonth{2012, 12}},
			secondHalf: PeriodRange{YearMonth{2013, 1}, YearMonth{2013, 6}},
		},
		{
			name:       "december start",
			first:      YearMonth{2020, 12},
			period:     1,
			full:       PeriodRange{YearMonth{2020, 12}, YearMonth{2021, 11}},
			firstHalf:  PeriodRange{YearMonth{2020, 12}, YearMonth{2021, 5}},
			secondHalf: PeriodRange{YearMonth{2021, 6}, YearMonth{2021, 11}},
		},
		{
			name:       "period zero",
			first:      YearMonth{2001, 1},
			period:     0,
			full:       PeriodRange{YearMonth{2000, 1}, YearMonth{2000, 12}},
			firstHalf:  PeriodRange{YearMonth{2000, 1}, YearMonth{2000, 6}},
			secondHalf: PeriodRange{YearMonth{2000, 7}, YearMonth{2000, 12}},
		},
		{
			name:       "negative period",
			first:      YearMonth{2001, 10},
			period:     -2,
			full:       PeriodRange{YearMonth{1998, 10}, YearMonth{1999, 9}},
			firstHalf:  PeriodRange{YearMonth{1998, 10}, YearMonth{1999, 3}},
			secondHalf: PeriodRange{YearMonth{1999, 4}, YearMonth{1999, 9}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.full, PeriodRangeOf(tt.period, tt.first))
			assert.Equal(t, tt.firstHalf, FirstHalfPeriodRange(tt.period, tt.first))
			assert.Equal(t, tt.secondHalf, SecondHalfPeriodRange(tt.period, tt.first))
		})
	}
}

func TestHalvesCoverPeriod(t *testing.T) {
	for month := 1; month <= 12; month++ {
		first := YearMonth{2001, month}
		for period := -3; period <= 30; period++ {
			full := PeriodRangeOf(period, first)
			h1 := FirstHalfPeriodRange(period, first)
			h2 := SecondHalfPeriodRange(period, first)

			require.Equal(t, 12, full.Len())
			require.Equal(t, 6, h1.Len())
			require.Equal(t, 6, h2.Len())
			require.Equal(t, full.Start, h1.Start)
			require.Equal(t, h1.End.AddMonths(1), h2.Start)
			require.Equal(t, full.End, h2.End)
		}
	}
}

func TestPeriodFromDate(t *testing.T) {
	tests := []struct {
		name  string
		date  Date
		first YearMonth
		want  int
	}{
		{"january start", Date{2025, 6, 15}, YearMonth{2001, 1}, 25},
		{"before start month", Date{2025, 3, 31}, YearMonth{2001, 4}, 24},
		{"on start month", Date{2025, 4, 1}, YearMonth{2001, 4}, 25},
		{"mid start month", Date{2025, 4, 20}, YearMonth{2001, 4}, 25},
		{"december", Date{2025, 12, 31}, YearMonth{2001, 4}, 25},
		{"before epoch", Date{1999, 5, 1}, YearMonth{2001, 1}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PeriodFromDate(tt.date, tt.first))
		})
	}
}

func TestFirstPeriodStart(t *testing.T) {
	assert.Equal(t, YearMonth{2001, 4}, FirstPeriodStart(4, 25, Date{2025, 5, 1}))
	assert.Equal(t, YearMonth{2001, 4}, FirstPeriodStart(4, 25, Date{2026, 3, 31}))
	assert.Equal(t, YearMonth{2001, 1}, FirstPeriodStart(1, 25, Date{2025, 1, 1}))
}

func TestPeriodRoundTrip(t *testing.T) {
	for month := 1; month <= 12; month++ {
		first := YearMonth{1995, month}
		for period := 1; period <= 40; period++ {
			r := PeriodRangeOf(period, first)
			require.Equal(t, period, PeriodFromDate(r.FirstDay(), first))
			require.Equal(t, period, PeriodFromDate(r.LastDay(), first))

			for _, ym := range r.Months() {
				d := Date{ym.Year, ym.Month, 15}
				require.Equal(t, period, PeriodFromDate(d, first), "date %v", d)
				require.Equal(t, first, FirstPeriodStart(month, period, d), "date %v", d)
			}
		}
	}
}

func TestPeriodRangeHelpers(t *testing.T) {
	r := PeriodRangeOf(25, YearMonth{2001, 4})

	assert.True(t, r.Contains(YearMonth{2025, 4}))
	assert.True(t, r.Contains(YearMonth{2026, 3}))
	assert.False(t, r.Contains(YearMonth{2026, 4}))
	assert.True(t, r.ContainsDate(Date{2025, 12, 31}))
	assert.Len(t, r.Months(), 12)
	assert.Equal(t, Date{2025, 4, 1}, r.FirstDay())
	assert.Equal(t, Date{2026, 3, 31}, r.LastDay())
	assert.Len(t, r.Dates(), 365)
	assert.Equal(t, "2025年4月〜2026年3月", r.String())
}

func TestParsePeriod(t *testing.T) {
	n, err := ParsePeriod(" 25 ")
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	n, err = ParsePeriod("-3")
	require.NoError(t, err)
	assert.Equal(t, -3, n)

	_, err = ParsePeriod("2.5")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = ParsePeriod("NaN")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
