package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/manager"
)

func collect(t *testing.T, ch <-chan tea.Msg, n int) []string {
	t.Helper()
	names := make([]string, 0, n)
	for len(names) < n {
		select {
		case msg := <-ch:
			changed, ok := msg.(ThemeChangedMsg)
			require.True(t, ok)
			names = append(names, changed.Name)
		case <-time.After(2 * time.Second):
			t.Fatalf("received %v, want %d notifications", names, n)
		}
	}
	return names
}

func TestForwarderKeepsOrderAndHoldsEarlyNotifications(t *testing.T) {
	f := NewForwarder()
	t.Cleanup(f.Stop)

	f.Notify("dark")

	received := make(chan tea.Msg)
	f.Start(func(msg tea.Msg) { received <- msg })

	for _, name := range []string{"light", "dark", "light"} {
		f.Notify(name)
	}

	assert.Equal(t, []string{"dark", "light", "dark", "light"}, collect(t, received, 4))
}

func TestForwarderWithManagerToggles(t *testing.T) {
	f := NewForwarder()
	t.Cleanup(f.Stop)

	mgr := newManager(t, manager.Options{OnThemeChange: f.Notify})
	readyModel(t, mgr)

	received := make(chan tea.Msg, 8)
	f.Start(func(msg tea.Msg) { received <- msg })

	for i := 0; i < 4; i++ {
		require.NoError(t, mgr.ToggleTheme())
	}

	assert.Equal(t, []string{"dark", "light", "dark", "light"}, collect(t, received, 4))
}

func TestForwarderStop(t *testing.T) {
	f := NewForwarder()
	f.Stop()
	f.Notify("dark")
	f.Start(func(tea.Msg) { t.Fatal("stopped forwarder delivered a message") })
	f.Stop()

	unstarted := NewForwarder()
	unstarted.Notify("dark")
	unstarted.Stop()
}
