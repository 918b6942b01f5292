// Package theme holds the theme data model: the color slots that vary per
// theme, the shared token groups, the built-in light and dark tables, and the
// merge rules used to layer partial configs on top of a theme.
//
// Two merges exist and they are deliberately different:
//
//	// accumulate a partial update (one level deep)
//	updates = updates.Merge(theme.Config{Colors: &theme.ColorConfig{Bg: "#000"}})
//
//	// derive the effective config (top level only)
//	effective := def.Config.Overlay(updates)
//
// CSSVariables flattens a color table into the custom properties projected
// on the document root ("--color-bg", "--button-text", ...).
package theme
