package index

import (
	"fmt"
	"strconv"
)

// Settings is the persisted configuration surface. Only the default view and
// first-day-of-week are semantically load-bearing; the debug toggles control
// diagnostic output.
type Settings struct {
	DefaultView    string `json:"default_view"`
	FirstDayOfWeek int    `json:"first_day_of_week"`
	DebugMode      bool   `json:"debug_mode"`
	TestMode       bool   `json:"test_mode"`
}

// DefaultSettings returns the settings used before anything is persisted.
func DefaultSettings() Settings {
	return Settings{
		DefaultView:    "agenda",
		FirstDayOfWeek: 0,
	}
}

const (
	keyDefaultView    = "default_view"
	keyFirstDayOfWeek = "first_day_of_week"
	keyDebugMode      = "debug_mode"
	keyTestMode       = "test_mode"
)

// LoadSettings reads the settings table, filling in defaults for keys that
// have never been saved.
func (db *DB) LoadSettings() (Settings, error) {
	s := DefaultSettings()

	rows, err := db.conn.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return s, fmt.Errorf("index: load settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return s, err
		}
		switch k {
		case keyDefaultView:
			s.DefaultView = v
		case keyFirstDayOfWeek:
			if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 6 {
				s.FirstDayOfWeek = n
			}
		case keyDebugMode:
			s.DebugMode = v == "true"
		case keyTestMode:
			s.TestMode = v == "true"
		}
	}
	return s, rows.Err()
}

// SaveSettings persists all settings keys in one transaction.
func (db *DB) SaveSettings(s Settings) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	pairs := map[string]string{
		keyDefaultView:    s.DefaultView,
		keyFirstDayOfWeek: strconv.Itoa(s.FirstDayOfWeek),
		keyDebugMode:      strconv.FormatBool(s.DebugMode),
		keyTestMode:       strconv.FormatBool(s.TestMode),
	}
	for k, v := range pairs {
		if _, err := tx.Exec(`
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, k, v); err != nil {
			return fmt.Errorf("index: save setting %s: %w", k, err)
		}
	}
	return tx.Commit()
}

// SeedSettings writes s only for keys that have never been persisted, so a
// config-file default does not clobber a user's saved preference.
func (db *DB) SeedSettings(s Settings) error {
	pairs := map[string]string{
		keyDefaultView:    s.DefaultView,
		keyFirstDayOfWeek: strconv.Itoa(s.FirstDayOfWeek),
		keyDebugMode:      strconv.FormatBool(s.DebugMode),
		keyTestMode:       strconv.FormatBool(s.TestMode),
	}
	for k, v := range pairs {
		if _, err := db.conn.Exec(`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`, k, v); err != nil {
			return fmt.Errorf("index: seed setting %s: %w", k, err)
		}
	}
	return nil
}
