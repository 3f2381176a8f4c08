package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/klabast/wb-services/period-calendar/internal/calendar"
)

var (
	currentSettings = calendar.DefaultSettings()
	SettingsMutex   sync.RWMutex
)

// SettingsPath returns the path of the committed settings file
func SettingsPath() string {
	return filepath.Join(DataPath, SettingsFile)
}

func tmpSettingsPath() string {
	return SettingsPath() + TmpSuffix
}

// GetSettings returns a copy of the active settings
func GetSettings() calendar.Settings {
	SettingsMutex.RLock()
	defer SettingsMutex.RUnlock()
	return currentSettings
}

// LoadSettings loads settings from the data directory, falling back to the
// defaults when no file exists yet
func LoadSettings() error {
	return loadSettingsFromFile(SettingsPath())
}

// LoadSettingsWithTmpCheck prefers uncommitted changes if a tmp file exists
func LoadSettingsWithTmpCheck() error {
	tmpFile := tmpSettingsPath()
	if _, err := os.Stat(tmpFile); err == nil {
		log.Printf("⚠️  Found temporary settings file: %s (loading unsaved changes)", tmpFile)
		return loadSettingsFromFile(tmpFile)
	}
	return LoadSettings()
}

func loadSettingsFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("No settings file at %s, using defaults", filename)
		SettingsMutex.Lock()
		currentSettings = calendar.DefaultSettings()
		SettingsMutex.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	s := calendar.DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid settings in %s: %w", filename, err)
	}

	SettingsMutex.Lock()
	currentSettings = s
	SettingsMutex.Unlock()
	return nil
}

// UpdateSettings validates s, saves it to the tmp file and makes it active.
// The active settings only change once the tmp file is written.
func UpdateSettings(s calendar.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	SettingsMutex.Lock()
	defer SettingsMutex.Unlock()

	if err := saveTmpSettingsLocked(s); err != nil {
		return err
	}
	currentSettings = s
	return nil
}

// saveTmpSettingsLocked writes s to the tmp file (caller must hold lock)
func saveTmpSettingsLocked(s calendar.Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(DataPath, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return os.WriteFile(tmpSettingsPath(), data, FilePermissions)
}

// CommitSettings backs up the committed file and makes the tmp file the new one
func CommitSettings() error {
	SettingsMutex.Lock()
	defer SettingsMutex.Unlock()

	tmpFile := tmpSettingsPath()
	if _, err := os.Stat(tmpFile); os.IsNotExist(err) {
		return fmt.Errorf("no temporary changes to commit")
	}

	backupDirPath := filepath.Join(DataPath, BackupDir)
	if err := os.MkdirAll(backupDirPath, 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	settingsFile := SettingsPath()
	if _, err := os.Stat(settingsFile); err == nil {
		backupFile := filepath.Join(backupDirPath, fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), SettingsFile, BackupSuffix))
		if err := os.Rename(settingsFile, backupFile); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
		log.Printf("✅ Backup created: %s", backupFile)
	}

	if err := os.Rename(tmpFile, settingsFile); err != nil {
		return fmt.Errorf("failed to commit changes: %w", err)
	}

	log.Printf("✅ Settings committed to %s", settingsFile)
	return nil
}

// RevertSettings discards tmp changes and reloads the committed file
func RevertSettings() error {
	tmpFile := tmpSettingsPath()
	if _, err := os.Stat(tmpFile); os.IsNotExist(err) {
		return fmt.Errorf("no temporary changes to revert")
	}

	if err := os.Remove(tmpFile); err != nil {
		return fmt.Errorf("failed to remove tmp file: %w", err)
	}

	if err := LoadSettings(); err != nil {
		return fmt.Errorf("failed to reload settings: %w", err)
	}

	log.Printf("✅ Changes reverted, reloaded from %s", SettingsPath())
	return nil
}

// HasTmpSettings reports whether uncommitted settings exist
func HasTmpSettings() bool {
	_, err := os.Stat(tmpSettingsPath())
	return err == nil
}

// LoadHolidayOverride reads holidays/<year>.json, a {"YYYY-MM-DD": "name"}
// object. ok is false when no file exists for the year.
func LoadHolidayOverride(year int) (calendar.HolidayMap, bool, error) {
	filename := filepath.Join(DataPath, HolidaysDir, strconv.Itoa(year)+".json")
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	holidays := make(calendar.HolidayMap, len(raw))
	for key, name := range raw {
		d, err := calendar.ParseDate(key)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", filename, err)
		}
		holidays.Add(d, name)
	}
	return holidays, true, nil
}
