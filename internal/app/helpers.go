package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/klabast/wb-services/period-calendar/internal/calendar"
)

// RequireMethod validates that the request uses the specified HTTP method
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// RequireEditMode validates that edit mode is enabled
func RequireEditMode(w http.ResponseWriter) bool {
	if !EditMode {
		http.Error(w, ErrEditModeDisabled, http.StatusForbidden)
		return false
	}
	return true
}

// writeJSON encodes v as the response body
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
	}
}

// periodParam reads ?period=, defaulting to the period containing today.
// Periods reaching outside the year window are rejected.
func periodParam(r *http.Request, s calendar.Settings, today calendar.Date) (int, error) {
	raw := r.URL.Query().Get("period")
	if raw == "" {
		return s.PeriodOf(today), nil
	}
	period, err := calendar.ParsePeriod(raw)
	if err != nil {
		return 0, err
	}
	if !PeriodInWindow(s, period) {
		return 0, fmt.Errorf("period %d outside years %d-%d: %w", period, MinYear, MaxYear, calendar.ErrInvalidInput)
	}
	return period, nil
}

// yearParam reads ?year=, defaulting to the year of today
func yearParam(r *http.Request, today calendar.Date) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return today.Year, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if !InYearWindow(year) {
		return 0, fmt.Errorf("year %d outside %d-%d: %w", year, MinYear, MaxYear, calendar.ErrInvalidInput)
	}
	return year, nil
}
