package app

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/klabast/wb-services/period-calendar/internal/calendar"
)

// ServeIndex serves the calendar page
func ServeIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(IndexHTML); err != nil {
		log.Printf("Error writing index HTML: %v", err)
	}
}

// GetConfig returns the settings together with today's period and holidays
func GetConfig(w http.ResponseWriter, r *http.Request) {
	today := calendar.Today()
	settings := GetSettings()

	writeJSON(w, map[string]interface{}{
		"settings":      settings,
		"today":         today,
		"currentPeriod": settings.PeriodOf(today),
		"weekdays":      WeekdayLabels,
		"editMode":      EditMode,
		"holidays":      HolidaysForYear(today.Year),
	})
}

// HandleCalendar renders a period
// Query params: period (default: current), half (full|first|second), layout (monthly|continuous)
func HandleCalendar(w http.ResponseWriter, r *http.Request) {
	today := calendar.Today()
	settings := GetSettings()

	period, err := periodParam(r, settings, today)
	if err != nil {
		http.Error(w, ErrInvalidPeriod, http.StatusBadRequest)
		return
	}

	half, err := ParseHalf(r.URL.Query().Get("half"))
	if err != nil {
		http.Error(w, ErrInvalidHalf, http.StatusBadRequest)
		return
	}

	layout := settings.MonthLayout
	if raw := r.URL.Query().Get("layout"); raw != "" {
		layout, err = calendar.ParseLayoutMode(raw)
		if err != nil {
			http.Error(w, ErrInvalidLayout, http.StatusBadRequest)
			return
		}
	}

	full := settings.PeriodRange(period)
	holidays := HolidaysBetween(full.FirstDay(), full.LastDay())

	writeJSON(w, BuildCalendarView(settings, period, half, layout, today, holidays))
}

// HandlePeriod returns the period containing ?date= (default: today)
func HandlePeriod(w http.ResponseWriter, r *http.Request) {
	d := calendar.Today()
	if raw := r.URL.Query().Get("date"); raw != "" {
		var err error
		d, err = calendar.ParseDate(raw)
		if err != nil {
			http.Error(w, ErrInvalidDateFormat, http.StatusBadRequest)
			return
		}
	}

	writeJSON(w, BuildPeriodInfo(GetSettings(), d))
}

// HandleHolidays returns the holidays of ?year= sorted by date
func HandleHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r, calendar.Today())
	if err != nil {
		http.Error(w, ErrInvalidYear, http.StatusBadRequest)
		return
	}

	holidays := HolidaysForYear(year)
	writeJSON(w, holidays.InRange(
		calendar.Date{Year: year, Month: 1, Day: 1},
		calendar.Date{Year: year, Month: 12, Day: 31},
	))
}

// HandleDownload exports the holidays of a period in ICS, CSV or JSON format
func HandleDownload(w http.ResponseWriter, r *http.Request) {
	settings := GetSettings()

	period, err := periodParam(r, settings, calendar.Today())
	if err != nil {
		http.Error(w, ErrInvalidPeriod, http.StatusBadRequest)
		return
	}

	rng := settings.PeriodRange(period)
	holidays := HolidaysBetween(rng.FirstDay(), rng.LastDay()).InRange(rng.FirstDay(), rng.LastDay())

	switch r.URL.Query().Get("format") {
	case "ics":
		GenerateICS(w, period, holidays)
	case "csv":
		GenerateCSV(w, period, holidays)
	case "json":
		GenerateJSON(w, period, rng, holidays)
	default:
		http.Error(w, ErrInvalidFormat, http.StatusBadRequest)
	}
}

// HandleSettings updates the settings (edit mode only)
func HandleSettings(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) || !RequireEditMode(w) {
		return
	}

	var req SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	settings, err := SettingsFromRequest(req, GetSettings(), calendar.Today())
	if err != nil {
		http.Error(w, ErrInvalidSettings+": "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := UpdateSettings(settings); err != nil {
		log.Printf("Error saving tmp settings: %v", err)
		http.Error(w, ErrFailedToSave, http.StatusInternalServerError)
		return
	}

	writeJSON(w, settings)
}

// HandleSettingsCommit commits temporary changes
func HandleSettingsCommit(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) || !RequireEditMode(w) {
		return
	}

	if err := CommitSettings(); err != nil {
		log.Printf("Error committing settings: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"status": "ok"})
}

// HandleSettingsRevert reverts temporary changes
func HandleSettingsRevert(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) || !RequireEditMode(w) {
		return
	}

	if err := RevertSettings(); err != nil {
		log.Printf("Error reverting settings: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"status": "ok"})
}

// HandleSettingsStatus returns whether there are unsaved changes
func HandleSettingsStatus(w http.ResponseWriter, r *http.Request) {
	if !RequireEditMode(w) {
		return
	}

	writeJSON(w, map[string]bool{"has_changes": HasTmpSettings()})
}
