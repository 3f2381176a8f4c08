package app

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/klabast/wb-services/period-calendar/internal/calendar"
)

// holidayNamespace scopes the name-based UUIDs used as ICS event UIDs
var holidayNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/klabast/wb-services/period-calendar/holidays"))

// HolidayUID returns a UID that stays the same across exports so calendar
// apps update events instead of duplicating them
func HolidayUID(h calendar.Holiday) string {
	return uuid.NewSHA1(holidayNamespace, []byte(h.Date.Key()+"/"+h.Name)).String() + "@period-calendar"
}

// BuildICS builds an iCalendar feed of all-day holiday events
func BuildICS(period int, holidays []calendar.Holiday) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetProductId(ICSProductID)
	cal.SetMethod(ics.MethodPublish)
	cal.SetCalscale("GREGORIAN")
	cal.SetXWRCalName(fmt.Sprintf("祝日 %s", PeriodLabel(period)))
	cal.SetXWRTimezone(ICSTimezone)
	cal.SetXPublishedTTL("PT12H")

	stamp := time.Now().UTC()
	for _, h := range holidays {
		start := time.Date(h.Date.Year, time.Month(h.Date.Month), h.Date.Day, 0, 0, 0, 0, time.UTC)

		event := cal.AddEvent(HolidayUID(h))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(start.AddDate(0, 0, 1))
		event.SetSummary(h.Name)
		event.SetDescription(fmt.Sprintf("%s (%s)", h.Name, PeriodLabel(period)))
	}
	return cal
}

// GenerateICS writes the holidays of a period as an ICS download
func GenerateICS(w http.ResponseWriter, period int, holidays []calendar.Holiday) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=holidays_period_%d.ics", period))

	if err := BuildICS(period, holidays).SerializeTo(w); err != nil {
		log.Printf("Error writing ICS export: %v", err)
	}
}

// GenerateCSV writes the holidays of a period as CSV
func GenerateCSV(w http.ResponseWriter, period int, holidays []calendar.Holiday) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=holidays_period_%d.csv", period))

	cw := csv.NewWriter(w)
	rows := [][]string{{"date", "weekday", "name"}}
	for _, h := range holidays {
		rows = append(rows, []string{h.Date.Key(), WeekdayLabels[mondayIndex(h.Date)], h.Name})
	}
	if err := cw.WriteAll(rows); err != nil {
		log.Printf("Error writing CSV export: %v", err)
	}
}

// GenerateJSON writes the holidays of a period as JSON
func GenerateJSON(w http.ResponseWriter, period int, rng calendar.PeriodRange, holidays []calendar.Holiday) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=holidays_period_%d.json", period))

	data := map[string]interface{}{
		"period":   period,
		"label":    PeriodLabel(period),
		"range":    rng,
		"holidays": holidays,
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON export: %v", err)
		http.Error(w, ErrFailedToGenerateJSON, http.StatusInternalServerError)
	}
}

// mondayIndex maps a date to its Monday-first column
func mondayIndex(d calendar.Date) int {
	return (int(d.Weekday()) + 6) % 7
}
