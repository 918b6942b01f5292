package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

func TestUseCommand_PersistsToCookieFile(t *testing.T) {
	home := setupCLIHome(t)

	stdout, err := executeCommand(t, "use", "dark")
	require.NoError(t, err)
	require.Equal(t, "Theme set to dark\n", stdout)

	jar, err := os.ReadFile(filepath.Join(home, ".config", "themekit", "cookies.json"))
	require.NoError(t, err)
	require.Contains(t, string(jar), "userPreferences")
	require.Contains(t, string(jar), "dark")

	stdout, err = executeCommand(t, "current")
	require.NoError(t, err)
	require.Equal(t, "dark\n", stdout)
}

func TestUseCommand_ExplicitCookiePath(t *testing.T) {
	home := setupCLIHome(t)
	jarPath := filepath.Join(home, "state", "jar.json")

	_, err := executeCommand(t, "--store-path", jarPath, "use", "dark")
	require.NoError(t, err)
	require.FileExists(t, jarPath)

	stdout, err := executeCommand(t, "--store-path", jarPath, "current")
	require.NoError(t, err)
	require.Equal(t, "dark\n", stdout)

	stdout, err = executeCommand(t, "current")
	require.NoError(t, err)
	require.Equal(t, "light\n", stdout)
}

func TestToggleCommand_SQLiteStore(t *testing.T) {
	home := setupCLIHome(t)
	dbPath := filepath.Join(home, "prefs.db")
	args := []string{"--store", "sqlite", "--store-path", dbPath}

	stdout, err := executeCommand(t, append(args, "toggle")...)
	require.NoError(t, err)
	require.Equal(t, "Theme set to dark\n", stdout)
	require.FileExists(t, dbPath)

	stdout, err = executeCommand(t, append(args, "current")...)
	require.NoError(t, err)
	require.Equal(t, "dark\n", stdout)

	stdout, err = executeCommand(t, append(args, "toggle")...)
	require.NoError(t, err)
	require.Equal(t, "Theme set to light\n", stdout)
}

func TestUseCommand_MemoryStoreIsPerProcess(t *testing.T) {
	setupCLIHome(t)

	stdout, err := executeCommand(t, "--store", "memory", "use", "dark")
	require.NoError(t, err)
	require.Equal(t, "Theme set to dark\n", stdout)

	stdout, err = executeCommand(t, "--store", "memory", "current")
	require.NoError(t, err)
	require.Equal(t, "light\n", stdout)
}

func TestUseCommand_UnknownTheme(t *testing.T) {
	setupCLIHome(t)

	_, err := executeCommand(t, "use", "neon")
	require.Error(t, err)
	require.ErrorIs(t, err, theme.ErrThemeNotFound)
	require.Contains(t, err.Error(), "themekit list")

	stdout, err := executeCommand(t, "current")
	require.NoError(t, err)
	require.Equal(t, "light\n", stdout)
}

func TestUseCommand_CustomTheme(t *testing.T) {
	home := setupCLIHome(t)
	themesPath := filepath.Join(home, "themes.yaml")
	writeFile(t, themesPath, oceanThemes)

	stdout, err := executeCommand(t, "--themes", themesPath, "use", "ocean")
	require.NoError(t, err)
	require.Equal(t, "Theme set to ocean\n", stdout)

	stdout, err = executeCommand(t, "--themes", themesPath, "current")
	require.NoError(t, err)
	require.Equal(t, "ocean\n", stdout)

	// without the custom themes the saved name is not restorable
	stdout, err = executeCommand(t, "current")
	require.NoError(t, err)
	require.Equal(t, "light\n", stdout)
}

func TestSettingsFileInWorkingDirectory(t *testing.T) {
	home := setupCLIHome(t)
	writeFile(t, filepath.Join(home, "themekit.yaml"), "theme: dark\npersistence:\n  store: memory\n")

	stdout, err := executeCommand(t, "current")
	require.NoError(t, err)
	require.Equal(t, "dark\n", stdout)
}

func TestInvalidStoreFromEnvironment(t *testing.T) {
	setupCLIHome(t)
	t.Setenv("THEMEKIT_PERSISTENCE_STORE", "redis")

	_, err := executeCommand(t, "current")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load settings")
}
