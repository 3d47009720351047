package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfigHome(t *testing.T) {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("settings tests isolate via XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.General.AutoOpen)
	assert.Equal(t, ThemeAdaptive, s.General.Theme)
	assert.Equal(t, 5, s.General.LogRetentionCount)
}

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	setupConfigHome(t)

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSaveAndLoadSettings(t *testing.T) {
	setupConfigHome(t)

	s := DefaultSettings()
	s.General.AutoOpen = false
	s.General.Theme = ThemeDark
	require.NoError(t, SaveSettings(s))

	_, err := os.Stat(GetSettingsPath() + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	setupConfigHome(t)

	path := GetSettingsPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{"general":{"theme":1}}`), 0o644))

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, s.General.Theme)
	assert.True(t, s.General.AutoOpen)
	assert.Equal(t, 5, s.General.LogRetentionCount)
}

func TestLoadSettings_Corrupt(t *testing.T) {
	setupConfigHome(t)

	path := GetSettingsPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := LoadSettings()
	assert.Error(t, err)
}

func TestGetSettingsMetadata_CoversCategories(t *testing.T) {
	meta := GetSettingsMetadata()
	s := DefaultSettings()
	for _, cat := range CategoryOrder() {
		assert.NotEmpty(t, meta[cat], "category %s has no settings", cat)
		for _, m := range meta[cat] {
			assert.NotEmpty(t, s.FormatValue(m.Key), "no value rendered for %s", m.Key)
		}
	}
}

func TestSettings_FormatValue(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "true", s.FormatValue("auto_open"))
	assert.Equal(t, "any", s.FormatValue("allowed_schemes"))
	assert.Equal(t, "System", s.FormatValue("theme"))
	assert.Equal(t, "5", s.FormatValue("log_retention_count"))

	s.General.AllowedSchemes = []string{"https", "http"}
	s.General.Theme = ThemeDark
	assert.Equal(t, "https, http", s.FormatValue("allowed_schemes"))
	assert.Equal(t, "Dark", s.FormatValue("theme"))
	assert.Empty(t, s.FormatValue("unknown"))
}
