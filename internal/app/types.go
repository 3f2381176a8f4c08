package app

import "github.com/klabast/wb-services/period-calendar/internal/calendar"

// DayView is one rendered day cell
type DayView struct {
	Date              calendar.Date `json:"date"`
	Day               int           `json:"day"`
	Weekday           int           `json:"weekday"`
	Holiday           string        `json:"holiday,omitempty"`
	IsHoliday         bool          `json:"isHoliday"`
	IsToday           bool          `json:"isToday"`
	IsPast            bool          `json:"isPast"`
	IsFirstDayOfMonth bool          `json:"isFirstDayOfMonth"`
}

// WeekView is a Monday-first row; nil cells are padding
type WeekView [7]*DayView

// MonthView groups the rows of one month (monthly layout)
type MonthView struct {
	Month calendar.YearMonth `json:"month"`
	Label string             `json:"label"`
	Weeks []WeekView         `json:"weeks"`
}

// RangeView is one displayed range: a whole period or one half
type RangeView struct {
	Label  string               `json:"label"`
	Range  calendar.PeriodRange `json:"range"`
	Months []MonthView          `json:"months,omitempty"`
	Weeks  []WeekView           `json:"weeks,omitempty"`
}

// CalendarView is the response of /api/calendar
type CalendarView struct {
	Period   int                 `json:"period"`
	Label    string              `json:"label"`
	Today    calendar.Date       `json:"today"`
	Layout   calendar.LayoutMode `json:"layout"`
	Weekdays []string            `json:"weekdays"`
	Ranges   []RangeView         `json:"ranges"`
}

// PeriodInfo is the response of /api/period
type PeriodInfo struct {
	Date       calendar.Date        `json:"date"`
	Period     int                  `json:"period"`
	Label      string               `json:"label"`
	Range      calendar.PeriodRange `json:"range"`
	FirstHalf  calendar.PeriodRange `json:"firstHalf"`
	SecondHalf calendar.PeriodRange `json:"secondHalf"`
}

// SettingsRequest is accepted by /api/settings. Either Settings is given in
// full, or PeriodStartMonth and CurrentPeriod are used to derive the first
// period start from today.
type SettingsRequest struct {
	Settings         *calendar.Settings `json:"settings,omitempty"`
	PeriodStartMonth int                `json:"periodStartMonth,omitempty"`
	CurrentPeriod    int                `json:"currentPeriod,omitempty"`
	MonthLayout      string             `json:"monthLayoutMode,omitempty"`
	PeriodSplit      string             `json:"periodSplitMode,omitempty"`
}
