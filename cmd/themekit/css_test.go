package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

func TestCSSCommand_NamedTheme(t *testing.T) {
	setupCLIHome(t)

	stdout, err := executeCommand(t, "css", "dark", "--selector", ".dark-theme")
	require.NoError(t, err)
	require.Contains(t, stdout, ".dark-theme {\n")
	require.Contains(t, stdout, "  --color-bg: #0F1115;\n")

	// naming a theme is a preview, not a switch
	stdout, err = executeCommand(t, "current")
	require.NoError(t, err)
	require.Equal(t, "light\n", stdout)
}

func TestCSSCommand_SavedTheme(t *testing.T) {
	setupCLIHome(t)

	_, err := executeCommand(t, "use", "dark")
	require.NoError(t, err)

	stdout, err := executeCommand(t, "css")
	require.NoError(t, err)
	require.Contains(t, stdout, ":root {\n")
	require.Contains(t, stdout, "--color-bg: #0F1115;")
}

func TestCSSCommand_UnknownTheme(t *testing.T) {
	setupCLIHome(t)

	_, err := executeCommand(t, "css", "neon")
	require.ErrorIs(t, err, theme.ErrThemeNotFound)
}
