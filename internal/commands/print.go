package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/klabast/wb-services/period-calendar/internal/app"
	"github.com/klabast/wb-services/period-calendar/internal/calendar"
)

const cellWidth = 3

// Styles used when printing a period to the terminal
type Styles struct {
	Title    lipgloss.Style
	Month    lipgloss.Style
	Header   lipgloss.Style
	Day      lipgloss.Style
	Saturday lipgloss.Style
	Holiday  lipgloss.Style
	Today    lipgloss.Style
	Past     lipgloss.Style
	Note     lipgloss.Style
}

// DefaultStyles colors holidays and Sundays red, Saturdays blue and
// highlights today; past days are faint
func DefaultStyles() Styles {
	cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right)
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Underline(true),
		Month:    lipgloss.NewStyle().Bold(true).MarginTop(1),
		Header:   cell.Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
		Day:      cell,
		Saturday: cell.Foreground(lipgloss.AdaptiveColor{Light: "#1d4ed8", Dark: "#8be9fd"}),
		Holiday:  cell.Foreground(lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#ff5555"}),
		Today:    cell.Bold(true).Reverse(true),
		Past:     cell.Faint(true),
		Note:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#ff5555"}),
	}
}

// PlainStyles only aligns cells, for pipes and tests
func PlainStyles() Styles {
	cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right)
	plain := lipgloss.NewStyle()
	return Styles{
		Title:    plain,
		Month:    plain.MarginTop(1),
		Header:   cell,
		Day:      cell,
		Saturday: cell,
		Holiday:  cell,
		Today:    cell,
		Past:     cell,
		Note:     plain,
	}
}

// Print handles the print subcommand
func Print(args []string) {
	fs := flag.NewFlagSet("print", flag.ExitOnError)
	period := fs.Int("period", 0, "Period to print (default: the period containing today)")
	half := fs.String("half", "", "full, first or second (default: from settings)")
	layout := fs.String("layout", "", "monthly or continuous (default: from settings)")
	todayFlag := fs.String("today", "", "Pretend today is YYYY-MM-DD")
	plain := fs.Bool("plain", false, "Disable colors")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: period-calendar print [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Prints a fiscal period as a Monday-first calendar.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if *todayFlag != "" {
		d, err := calendar.ParseDate(*todayFlag)
		if err != nil {
			fail(err)
		}
		calendar.SetToday(d)
	}
	today := calendar.Today()

	if err := app.LoadSettings(); err != nil {
		fail(err)
	}
	settings := app.GetSettings()

	p := settings.PeriodOf(today)
	if isFlagSet(fs, "period") {
		p = *period
	}
	if !app.PeriodInWindow(settings, p) {
		fail(fmt.Errorf("period %d: years must stay within %d-%d", p, app.MinYear, app.MaxYear))
	}

	h, err := app.ParseHalf(*half)
	if err != nil {
		fail(err)
	}

	mode := settings.MonthLayout
	if *layout != "" {
		if mode, err = calendar.ParseLayoutMode(*layout); err != nil {
			fail(err)
		}
	}

	full := settings.PeriodRange(p)
	holidays := app.HolidaysBetween(full.FirstDay(), full.LastDay())
	view := app.BuildCalendarView(settings, p, h, mode, today, holidays)

	styles := DefaultStyles()
	if *plain {
		styles = PlainStyles()
	}
	RenderCalendar(os.Stdout, view, styles)
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// RenderCalendar writes view to w
func RenderCalendar(w io.Writer, view app.CalendarView, styles Styles) {
	var blocks []string
	for _, r := range view.Ranges {
		blocks = append(blocks, styles.Title.Render(fmt.Sprintf("%s %s %s", view.Label, r.Label, r.Range)))
		if view.Layout == calendar.LayoutContinuous {
			blocks = append(blocks, renderGrid(view.Weekdays, r.Weeks, styles, true))
			continue
		}
		for _, m := range r.Months {
			blocks = append(blocks, styles.Month.Render(m.Label))
			blocks = append(blocks, renderGrid(view.Weekdays, m.Weeks, styles, false))
			if notes := renderHolidayNotes(m.Weeks, styles); notes != "" {
				blocks = append(blocks, notes)
			}
		}
		blocks = append(blocks, "")
	}
	fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

func renderGrid(weekdays []string, weeks []app.WeekView, styles Styles, monthGutter bool) string {
	gutter := lipgloss.NewStyle().Width(9)

	header := make([]string, 0, 8)
	if monthGutter {
		header = append(header, gutter.Render(""))
	}
	for _, label := range weekdays {
		header = append(header, styles.Header.Render(label))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for i, week := range weeks {
		cells := make([]string, 0, 8)
		if monthGutter {
			cells = append(cells, gutter.Render(monthMarker(week, i == 0)))
		}
		for _, day := range week {
			cells = append(cells, renderDay(day, styles))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// monthMarker labels the row in which a month begins
func monthMarker(week app.WeekView, firstRow bool) string {
	for _, day := range week {
		if day == nil {
			continue
		}
		if day.IsFirstDayOfMonth || firstRow {
			return day.Date.YearMonth().Format()
		}
		firstRow = false
	}
	return ""
}

func renderDay(day *app.DayView, styles Styles) string {
	if day == nil {
		return styles.Day.Render("")
	}
	label := fmt.Sprintf("%d", day.Day)
	switch {
	case day.IsToday:
		return styles.Today.Render(label)
	case day.IsHoliday || day.Weekday == int(time.Sunday):
		return styles.Holiday.Render(label)
	case day.Weekday == int(time.Saturday):
		return styles.Saturday.Render(label)
	case day.IsPast:
		return styles.Past.Render(label)
	}
	return styles.Day.Render(label)
}

func renderHolidayNotes(weeks []app.WeekView, styles Styles) string {
	var notes []string
	for _, week := range weeks {
		for _, day := range week {
			if day != nil && day.IsHoliday {
				notes = append(notes, fmt.Sprintf("  %d/%d %s", day.Date.Month, day.Day, day.Holiday))
			}
		}
	}
	if len(notes) == 0 {
		return ""
	}
	return styles.Note.Render(strings.Join(notes, "\n"))
}
