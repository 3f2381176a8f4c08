package calendar

import (
	"fmt"
)

// LayoutMode selects how dates are laid into rows.
type LayoutMode string

const (
	LayoutMonthly    LayoutMode = "monthly"
	LayoutContinuous LayoutMode = "continuous"
)

// SplitMode selects whether a period is shown whole or as two halves.
type SplitMode string

const (
	SplitHalves SplitMode = "split"
	SplitSingle SplitMode = "single"
)

// Settings is the calendar configuration owned by the application.
type Settings struct {
	FirstPeriodStart YearMonth  `json:"firstPeriodStart"`
	MonthLayout      LayoutMode `json:"monthLayoutMode"`
	PeriodSplit      SplitMode  `json:"periodSplitMode"`
}

// DefaultSettings starts period 1 in January 2001, monthly layout, split halves.
func DefaultSettings() Settings {
	return Settings{
		FirstPeriodStart: DefaultFirstPeriodStart,
		MonthLayout:      LayoutMonthly,
		PeriodSplit:      SplitHalves,
	}
}

// ParseLayoutMode accepts "monthly" or "continuous".
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch m := LayoutMode(s); m {
	case LayoutMonthly, LayoutContinuous:
		return m, nil
	}
	return "", fmt.Errorf("layout mode %q: %w", s, ErrInvalidInput)
}

// ParseSplitMode accepts "split" or "single".
func ParseSplitMode(s string) (SplitMode, error) {
	switch m := SplitMode(s); m {
	case SplitHalves, SplitSingle:
		return m, nil
	}
	return "", fmt.Errorf("split mode %q: %w", s, ErrInvalidInput)
}

// Validate checks that every field holds a known value.
func (s Settings) Validate() error {
	if s.FirstPeriodStart.Month < 1 || s.FirstPeriodStart.Month > 12 {
		return fmt.Errorf("first period start month %d: %w", s.FirstPeriodStart.Month, ErrInvalidInput)
	}
	if _, err := ParseLayoutMode(string(s.MonthLayout)); err != nil {
		return err
	}
	if _, err := ParseSplitMode(string(s.PeriodSplit)); err != nil {
		return err
	}
	return nil
}

func (s Settings) PeriodRange(period int) PeriodRange {
	return PeriodRangeOf(period, s.FirstPeriodStart)
}

func (s Settings) FirstHalf(period int) PeriodRange {
	return FirstHalfPeriodRange(period, s.FirstPeriodStart)
}

func (s Settings) SecondHalf(period int) PeriodRange {
	return SecondHalfPeriodRange(period, s.FirstPeriodStart)
}

// PeriodOf returns the period d falls in.
func (s Settings) PeriodOf(d Date) int {
	return PeriodFromDate(d, s.FirstPeriodStart)
}

// Ranges returns the ranges to display for a period: both halves in split
// mode, the whole period otherwise.
func (s Settings) Ranges(period int) []PeriodRange {
	if s.PeriodSplit == SplitHalves {
		return []PeriodRange{s.FirstHalf(period), s.SecondHalf(period)}
	}
	return []PeriodRange{s.PeriodRange(period)}
}
