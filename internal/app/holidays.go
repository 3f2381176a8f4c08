package app

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/klabast/wb-services/period-calendar/internal/calendar"
)

var (
	holidayCache = make(map[int]calendar.HolidayMap)
	holidayMutex sync.RWMutex
)

// GetJapaneseHolidays returns the national holidays of Japan for the given
// year, following the holiday law as amended through 2018 (accurate for
// 2007 onwards; equinoxes for 1980-2099)
func GetJapaneseHolidays(year int) calendar.HolidayMap {
	holidays := make(calendar.HolidayMap)
	add := func(month, day int, name string) {
		holidays.Add(calendar.Date{Year: year, Month: month, Day: day}, name)
	}

	// Fixed holidays
	add(1, 1, "元日")
	add(2, 11, "建国記念の日")
	add(4, 29, "昭和の日")
	add(5, 3, "憲法記念日")
	add(5, 4, "みどりの日")
	add(5, 5, "こどもの日")
	add(11, 3, "文化の日")
	add(11, 23, "勤労感謝の日")

	switch {
	case year >= 2020:
		add(2, 23, "天皇誕生日")
	case year >= 1989 && year <= 2018:
		add(12, 23, "天皇誕生日")
	}

	// Happy Monday holidays
	add(1, nthMonday(year, 1, 2), "成人の日")
	add(9, nthMonday(year, 9, 3), "敬老の日")

	// Equinoxes
	add(3, vernalEquinoxDay(year), "春分の日")
	add(9, autumnalEquinoxDay(year), "秋分の日")

	// Olympic years moved 海の日, スポーツの日 and 山の日
	switch year {
	case 2020:
		add(7, 23, "海の日")
		add(7, 24, "スポーツの日")
		add(8, 10, "山の日")
	case 2021:
		add(7, 22, "海の日")
		add(7, 23, "スポーツの日")
		add(8, 8, "山の日")
	default:
		add(7, nthMonday(year, 7, 3), "海の日")
		if year >= 2016 {
			add(8, 11, "山の日")
		}
		if year >= 2022 {
			add(10, nthMonday(year, 10, 2), "スポーツの日")
		} else {
			add(10, nthMonday(year, 10, 2), "体育の日")
		}
	}

	// Enthronement of 2019
	if year == 2019 {
		add(5, 1, "天皇の即位の日")
		add(10, 22, "即位礼正殿の儀の行われる日")
	}

	addCitizensHolidays(holidays)
	addSubstituteHolidays(holidays)

	return holidays
}

// addCitizensHolidays marks a weekday sandwiched between two holidays
func addCitizensHolidays(holidays calendar.HolidayMap) {
	for _, h := range sortedHolidays(holidays) {
		between := h.Date.AddDays(1)
		after := h.Date.AddDays(2)
		if calendar.IsHoliday(between, holidays) || between.Weekday() == time.Sunday {
			continue
		}
		if calendar.IsHoliday(after, holidays) {
			holidays.Add(between, "国民の休日")
		}
	}
}

// addSubstituteHolidays moves a holiday falling on Sunday to the next day
// that is not already a holiday
func addSubstituteHolidays(holidays calendar.HolidayMap) {
	for _, h := range sortedHolidays(holidays) {
		if h.Date.Weekday() != time.Sunday {
			continue
		}
		d := h.Date.AddDays(1)
		for calendar.IsHoliday(d, holidays) {
			d = d.AddDays(1)
		}
		holidays.Add(d, "振替休日")
	}
}

func sortedHolidays(holidays calendar.HolidayMap) []calendar.Holiday {
	list := make([]calendar.Holiday, 0, len(holidays))
	for _, h := range holidays {
		list = append(list, h)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Date.Before(list[j].Date)
	})
	return list
}

// nthMonday returns the day of the month of the n-th Monday
func nthMonday(year, month, n int) int {
	first := calendar.Date{Year: year, Month: month, Day: 1}.Weekday()
	offset := (int(time.Monday) - int(first) + 7) % 7
	return 1 + offset + 7*(n-1)
}

// vernalEquinoxDay uses the integer form of 20.8431 + 0.242194*(y-1980) - (y-1980)/4
func vernalEquinoxDay(year int) int {
	y := year - 1980
	return (20843100+242194*y)/1000000 - y/4
}

// autumnalEquinoxDay uses the integer form of 23.2488 + 0.242194*(y-1980) - (y-1980)/4
func autumnalEquinoxDay(year int) int {
	y := year - 1980
	return (23248800+242194*y)/1000000 - y/4
}

// InYearWindow reports whether year lies in [MinYear, MaxYear]
func InYearWindow(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// HolidaysForYear returns the holidays of a year, preferring an override file
// from the data directory over the computed set. Results are cached; years
// outside the window have no holidays and are never cached.
func HolidaysForYear(year int) calendar.HolidayMap {
	if !InYearWindow(year) {
		return calendar.HolidayMap{}
	}

	holidayMutex.RLock()
	cached, ok := holidayCache[year]
	holidayMutex.RUnlock()
	if ok {
		return cached
	}

	holidays, found, err := LoadHolidayOverride(year)
	if err != nil {
		log.Printf("Error loading holiday override for %d: %v", year, err)
	}
	if !found || err != nil {
		holidays = GetJapaneseHolidays(year)
	}

	holidayMutex.Lock()
	holidayCache[year] = holidays
	holidayMutex.Unlock()
	return holidays
}

// HolidaysBetween merges the holidays of every year touched by [from, to],
// clamped to the year window
func HolidaysBetween(from, to calendar.Date) calendar.HolidayMap {
	merged := make(calendar.HolidayMap)
	first, last := max(from.Year, MinYear), min(to.Year, MaxYear)
	if first > last {
		return merged
	}
	// year <= last would wrap at math.MaxInt, so stop after last explicitly
	for year := first; ; year++ {
		merged = merged.Merge(HolidaysForYear(year))
		if year >= last {
			break
		}
	}
	return merged
}

// holidayCacheSize returns how many years are cached
func holidayCacheSize() int {
	holidayMutex.RLock()
	defer holidayMutex.RUnlock()
	return len(holidayCache)
}

// ClearHolidayCache forgets cached years so override files are re-read
func ClearHolidayCache() {
	holidayMutex.Lock()
	holidayCache = make(map[int]calendar.HolidayMap)
	holidayMutex.Unlock()
}
