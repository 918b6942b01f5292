// Package components renders theme-aware terminal widgets with lipgloss.
//
// Components never hold theme state. They render against a RenderContext,
// normally taken from the manager attached to a context.Context:
//
//	ctx := manager.NewContext(context.Background(), m)
//	out := components.Render(ctx, components.NewThemeDemo())
//
// Rendering outside a provider panics, exactly like manager.FromContext.
// StaticContext renders a preview of an arbitrary color table.
package components
