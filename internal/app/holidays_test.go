package app

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/klabast/wb-services/period-calendar/internal/calendar"
)

func TestGetJapaneseHolidays2025(t *testing.T) {
	holidays := GetJapaneseHolidays(2025)

	want := map[string]string{
		"2025-01-01": "元日",
		"2025-01-13": "成人の日",
		"2025-02-11": "建国記念の日",
		"2025-02-23": "天皇誕生日",
		"2025-02-24": "振替休日",
		"2025-03-20": "春分の日",
		"2025-04-29": "昭和の日",
		"2025-05-03": "憲法記念日",
		"2025-05-04": "みどりの日",
		"2025-05-05": "こどもの日",
		"2025-05-06": "振替休日",
		"2025-07-21": "海の日",
		"2025-08-11": "山の日",
		"2025-09-15": "敬老の日",
		"2025-09-23": "秋分の日",
		"2025-10-13": "スポーツの日",
		"2025-11-03": "文化の日",
		"2025-11-23": "勤労感謝の日",
		"2025-11-24": "振替休日",
	}

	if len(holidays) != len(want) {
		t.Errorf("Expected %d holidays, got %d", len(want), len(holidays))
	}
	for key, name := range want {
		h, ok := holidays[key]
		if !ok {
			t.Errorf("Missing holiday %s (%s)", key, name)
			continue
		}
		if h.Name != name {
			t.Errorf("%s: got %s, want %s", key, h.Name, name)
		}
	}
}

func TestGetJapaneseHolidaysSpecialYears(t *testing.T) {
	tests := []struct {
		date string
		name string
	}{
		{"2019-04-30", "国民の休日"},
		{"2019-05-01", "天皇の即位の日"},
		{"2019-05-02", "国民の休日"},
		{"2019-05-06", "振替休日"},
		{"2019-10-22", "即位礼正殿の儀の行われる日"},
		{"2019-10-14", "体育の日"},
		{"2018-12-23", "天皇誕生日"},
		{"2020-07-23", "海の日"},
		{"2020-07-24", "スポーツの日"},
		{"2020-08-10", "山の日"},
		{"2021-08-09", "振替休日"},
		{"2024-09-23", "振替休日"},
		{"2026-09-22", "国民の休日"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := calendar.ParseDate(tt.date)
			if err != nil {
				t.Fatal(err)
			}
			h, ok := calendar.GetHoliday(d, GetJapaneseHolidays(d.Year))
			if !ok {
				t.Fatalf("%s should be a holiday", tt.date)
			}
			if h.Name != tt.name {
				t.Errorf("%s: got %s, want %s", tt.date, h.Name, tt.name)
			}
		})
	}

	if calendar.IsHoliday(calendar.Date{Year: 2019, Month: 2, Day: 23}, GetJapaneseHolidays(2019)) {
		t.Error("2019 had no Emperor's Birthday")
	}
	if calendar.IsHoliday(calendar.Date{Year: 2020, Month: 10, Day: 12}, GetJapaneseHolidays(2020)) {
		t.Error("Sports Day 2020 moved to July")
	}
}

func TestEquinoxDays(t *testing.T) {
	tests := []struct {
		year, vernal, autumnal int
	}{
		{2000, 20, 23},
		{2012, 20, 22},
		{2023, 21, 23},
		{2024, 20, 22},
		{2025, 20, 23},
		{2026, 20, 23},
	}
	for _, tt := range tests {
		if got := vernalEquinoxDay(tt.year); got != tt.vernal {
			t.Errorf("vernal %d: got %d, want %d", tt.year, got, tt.vernal)
		}
		if got := autumnalEquinoxDay(tt.year); got != tt.autumnal {
			t.Errorf("autumnal %d: got %d, want %d", tt.year, got, tt.autumnal)
		}
	}
}

func TestHolidaysForYearOverride(t *testing.T) {
	DataPath = t.TempDir()
	ClearHolidayCache()
	t.Cleanup(ClearHolidayCache)

	dir := filepath.Join(DataPath, HolidaysDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	override := `{"2030-01-01": "元日", "2030-01-02": "会社休日"}`
	if err := os.WriteFile(filepath.Join(dir, "2030.json"), []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	holidays := HolidaysForYear(2030)
	if len(holidays) != 2 {
		t.Fatalf("Expected override with 2 holidays, got %d", len(holidays))
	}
	if h, ok := calendar.GetHoliday(calendar.Date{Year: 2030, Month: 1, Day: 2}, holidays); !ok || h.Name != "会社休日" {
		t.Errorf("Override holiday missing, got %+v", h)
	}

	// Years without a file are computed
	if len(HolidaysForYear(2031)) < 16 {
		t.Error("Expected computed holidays for 2031")
	}
}

func TestHolidaysForYearBadOverride(t *testing.T) {
	DataPath = t.TempDir()
	ClearHolidayCache()
	t.Cleanup(ClearHolidayCache)

	dir := filepath.Join(DataPath, HolidaysDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "2025.json"), []byte(`{"2025-13-01": "x"}`), 0644); err != nil {
		t.Fatal(err)
	}

	// Falls back to the computed set
	if !calendar.IsHoliday(calendar.Date{Year: 2025, Month: 1, Day: 13}, HolidaysForYear(2025)) {
		t.Error("Expected computed holidays when override is invalid")
	}
}

func TestHolidaysBetween(t *testing.T) {
	DataPath = t.TempDir()
	ClearHolidayCache()
	t.Cleanup(ClearHolidayCache)

	holidays := HolidaysBetween(calendar.Date{Year: 2025, Month: 4, Day: 1}, calendar.Date{Year: 2026, Month: 3, Day: 31})
	if !calendar.IsHoliday(calendar.Date{Year: 2025, Month: 5, Day: 5}, holidays) {
		t.Error("Missing 2025 holiday")
	}
	if !calendar.IsHoliday(calendar.Date{Year: 2026, Month: 1, Day: 1}, holidays) {
		t.Error("Missing 2026 holiday")
	}
}

func TestHolidaysBetweenAtYearLimits(t *testing.T) {
	DataPath = t.TempDir()
	ClearHolidayCache()
	t.Cleanup(ClearHolidayCache)

	tests := []struct {
		name     string
		from, to calendar.Date
		wantLen  int
	}{
		{"Max int year", calendar.Date{Year: math.MaxInt, Month: 1, Day: 1}, calendar.Date{Year: math.MaxInt, Month: 12, Day: 31}, 0},
		{"Min int year", calendar.Date{Year: math.MinInt, Month: 1, Day: 1}, calendar.Date{Year: math.MinInt, Month: 12, Day: 31}, 0},
		{"Reversed", calendar.Date{Year: 2026, Month: 1, Day: 1}, calendar.Date{Year: 2025, Month: 1, Day: 1}, 0},
		{"Clamped to last year", calendar.Date{Year: 9999, Month: 1, Day: 1}, calendar.Date{Year: math.MaxInt, Month: 12, Day: 31}, len(GetJapaneseHolidays(9999))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(HolidaysBetween(tt.from, tt.to)); got != tt.wantLen {
				t.Errorf("Expected %d holidays, got %d", tt.wantLen, got)
			}
		})
	}

	if n := holidayCacheSize(); n != 1 {
		t.Errorf("Expected only year 9999 cached, got %d years", n)
	}
}

func TestHolidaysForYearOutsideWindow(t *testing.T) {
	DataPath = t.TempDir()
	ClearHolidayCache()
	t.Cleanup(ClearHolidayCache)

	for _, year := range []int{0, -1, 10000, 100000} {
		if got := HolidaysForYear(year); len(got) != 0 {
			t.Errorf("Year %d: expected no holidays, got %d", year, len(got))
		}
	}
	if n := holidayCacheSize(); n != 0 {
		t.Errorf("Expected empty cache, got %d years", n)
	}
}
