package calendar

import "sort"

// Holiday is a named day off.
type Holiday struct {
	Date Date   `json:"date"`
	Name string `json:"name"`
}

// HolidayMap indexes holidays by Date.Key ("YYYY-MM-DD"). A nil map is an
// empty calendar.
type HolidayMap map[string]Holiday

// IsHoliday reports whether d is in m.
func IsHoliday(d Date, m HolidayMap) bool {
	_, ok := m[d.Key()]
	return ok
}

// GetHoliday returns the holiday on d, if any.
func GetHoliday(d Date, m HolidayMap) (Holiday, bool) {
	h, ok := m[d.Key()]
	return h, ok
}

// Add stores h under its date key, replacing any existing entry.
func (m HolidayMap) Add(d Date, name string) {
	m[d.Key()] = Holiday{Date: d, Name: name}
}

// Merge copies other into a new map; entries in other win.
func (m HolidayMap) Merge(other HolidayMap) HolidayMap {
	out := make(HolidayMap, len(m)+len(other))
	for k, h := range m {
		out[k] = h
	}
	for k, h := range other {
		out[k] = h
	}
	return out
}

// InRange returns the holidays between from and to inclusive, sorted by date.
func (m HolidayMap) InRange(from, to Date) []Holiday {
	out := []Holiday{}
	for _, h := range m {
		if !h.Date.Before(from) && !h.Date.After(to) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
