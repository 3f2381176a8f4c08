package app

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Constants
const (
	DefaultDataDir  = "data"
	SettingsFile    = "settings.json"
	HolidaysDir     = "holidays"
	BackupDir       = "backup"
	BackupSuffix    = ".backup"
	TmpSuffix       = ".tmp.json"
	FilePermissions = 0644

	// Years the holiday provider and the HTTP API accept
	MinYear = 1
	MaxYear = 9999

	// Error messages
	ErrEditModeDisabled     = "Edit mode disabled"
	ErrInvalidDateFormat    = "Invalid date format"
	ErrInvalidYear          = "Invalid year"
	ErrInvalidPeriod        = "Invalid period"
	ErrInvalidHalf          = "Invalid half (expected full, first or second)"
	ErrInvalidLayout        = "Invalid layout"
	ErrInvalidFormat        = "Invalid format"
	ErrInvalidSettings      = "Invalid settings"
	ErrInternalServer       = "Internal server error"
	ErrFailedToSave         = "Failed to save settings"
	ErrFailedToGenerateJSON = "Failed to generate JSON"

	// Mode strings
	ModeServe = "serve"
	ModeEdit  = "edit"

	// ICS constants
	ICSProductID = "-//klabast//Period Calendar//JA"
	ICSTimezone  = "Asia/Tokyo"
)

// Global variables
var (
	DataPath = DefaultDataDir
	EditMode bool

	// Embedded files (set by main)
	StaticFiles fs.FS
	IndexHTML   []byte
)

// Weekday labels, Monday first.
var WeekdayLabels = []string{"月", "火", "水", "木", "金", "土", "日"}

func init() {
	if dir := os.Getenv("PERIOD_CALENDAR_DATA"); dir != "" {
		DataPath = dir
		return
	}
	if cwd, err := os.Getwd(); err == nil {
		DataPath = filepath.Join(cwd, DefaultDataDir)
	}
}
