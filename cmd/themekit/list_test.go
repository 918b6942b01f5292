package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const oceanThemes = `themes:
  - name: ocean
    themeName: Ocean
    config:
      colors:
        accent: "#0EA5E9"
`

func TestListCommand_TableOutput(t *testing.T) {
	setupCLIHome(t)

	stdout, err := executeCommand(t, "list")
	require.NoError(t, err)
	require.Contains(t, stdout, "NAME   DISPLAY NAME  CURRENT")
	require.Contains(t, stdout, "light  Light         *")
	require.Contains(t, stdout, "dark   Dark")
}

func TestListCommand_JSONOutput(t *testing.T) {
	home := setupCLIHome(t)
	themesPath := filepath.Join(home, "themes.yaml")
	writeFile(t, themesPath, oceanThemes)

	stdout, err := executeCommand(t, "--themes", themesPath, "--theme", "ocean", "list", "--json")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "1.0", payload.Version)
	require.Equal(t, "ocean", payload.Current)
	require.Equal(t, 3, payload.Count)

	names := make([]string, len(payload.Themes))
	for i, th := range payload.Themes {
		names[i] = th.Name
	}
	require.Equal(t, []string{"light", "dark", "ocean"}, names)
	require.Equal(t, "Ocean", payload.Themes[2].DisplayName)
	require.Equal(t, "ocean-theme", payload.Themes[2].ClassName)
	require.True(t, payload.Themes[2].Current)
	require.False(t, payload.Themes[0].Current)
}

func TestListCommand_InvalidThemesFile(t *testing.T) {
	home := setupCLIHome(t)
	themesPath := filepath.Join(home, "themes.yaml")
	writeFile(t, themesPath, "themes:\n  - name: ocean\n    colour: red\n")

	_, err := executeCommand(t, "--themes", themesPath, "list")
	require.Error(t, err)

	var cmdErr *commandError
	require.ErrorAs(t, err, &cmdErr)
	require.Contains(t, err.Error(), "Failed to load themes")
}

func TestFormatCurrent(t *testing.T) {
	require.Equal(t, "", formatCurrent(false, true))
	require.Equal(t, "●", formatCurrent(true, true))
	require.Equal(t, "*", formatCurrent(true, false))
}
