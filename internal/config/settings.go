package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Settings holds all user-configurable application settings organized by category.
type Settings struct {
	General GeneralSettings `json:"general"`
}

// GeneralSettings contains application behavior settings.
type GeneralSettings struct {
	AutoOpen          bool     `json:"auto_open"`
	AllowedSchemes    []string `json:"allowed_schemes"`
	Theme             int      `json:"theme"`
	LogRetentionCount int      `json:"log_retention_count"`
}

const (
	ThemeAdaptive = 0
	ThemeLight    = 1
	ThemeDark     = 2
)

// SettingMeta provides metadata for a single setting (for UI rendering).
type SettingMeta struct {
	Key         string // JSON key name
	Label       string // Human-readable label
	Description string // Help text
	Type        string // "bool", "int", "list"
}

// GetSettingsMetadata returns metadata for all settings organized by category.
func GetSettingsMetadata() map[string][]SettingMeta {
	return map[string][]SettingMeta{
		"General": {
			{Key: "auto_open", Label: "Auto Open", Description: "Open each processed URL in the default browser after copying it.", Type: "bool"},
			{Key: "allowed_schemes", Label: "Allowed Schemes", Description: "URL schemes accepted for processing. Leave empty to accept any scheme.", Type: "list"},
			{Key: "theme", Label: "App Theme", Description: "UI Theme (System, Light, Dark).", Type: "int"},
			{Key: "log_retention_count", Label: "Log Retention Count", Description: "Number of recent log files to keep.", Type: "int"},
		},
	}
}

// CategoryOrder returns the order of categories for UI tabs.
func CategoryOrder() []string {
	return []string{"General"}
}

// FormatValue renders the current value of the setting with the given JSON key.
func (s *Settings) FormatValue(key string) string {
	g := s.General
	switch key {
	case "auto_open":
		return fmt.Sprintf("%t", g.AutoOpen)
	case "allowed_schemes":
		if len(g.AllowedSchemes) == 0 {
			return "any"
		}
		return strings.Join(g.AllowedSchemes, ", ")
	case "theme":
		switch g.Theme {
		case ThemeLight:
			return "Light"
		case ThemeDark:
			return "Dark"
		default:
			return "System"
		}
	case "log_retention_count":
		return fmt.Sprintf("%d", g.LogRetentionCount)
	}
	return ""
}

// DefaultSettings returns a new Settings instance with sensible defaults.
func DefaultSettings() *Settings {
	return &Settings{
		General: GeneralSettings{
			AutoOpen:          true,
			Theme:             ThemeAdaptive,
			LogRetentionCount: 5,
		},
	}
}

// LoadSettings loads settings from disk, falling back to defaults when the file is missing.
func LoadSettings() (*Settings, error) {
	data, err := os.ReadFile(GetSettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings() // Start with defaults to fill any missing fields
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// SaveSettings saves settings to disk atomically.
func SaveSettings(s *Settings) error {
	path := GetSettingsPath()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	// Atomic write: write to temp file, then rename
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tempPath, path)
}
