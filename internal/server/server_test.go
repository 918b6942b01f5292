package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/persistence"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

func newTestServer(t *testing.T, opts Options) http.Handler {
	t.Helper()
	return New(opts).Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	resp := rec.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// themeCookie returns the last theme cookie written, which is the one the
// browser keeps.
func themeCookie(resp *http.Response) (*http.Cookie, bool) {
	var found *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == persistence.DefaultKey {
			found = c
		}
	}
	return found, found != nil
}

func prefs(name string) *http.Cookie {
	return &http.Cookie{Name: persistence.DefaultKey, Value: name}
}

func TestGetThemeWithoutCookie(t *testing.T) {
	t.Parallel()

	resp := do(t, newTestServer(t, Options{}), http.MethodGet, "/api/theme", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	_, written := themeCookie(resp)
	assert.False(t, written, "reading must not write the cookie")

	body := decode[ThemeResponse](t, resp)
	assert.Equal(t, "light", body.CurrentTheme)
	assert.Equal(t, "light-theme", body.ClassName)
	assert.True(t, body.Ready)
	assert.Equal(t, "#FFFFFF", body.Variables["--color-bg"])
	require.NotNil(t, body.Theme.Colors)
	assert.Equal(t, "#2563EB", body.Theme.Colors.Accent)
}

func TestGetThemeRestoresFromCookie(t *testing.T) {
	t.Parallel()

	resp := do(t, newTestServer(t, Options{}), http.MethodGet, "/api/theme", "", prefs("dark"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[ThemeResponse](t, resp)
	assert.Equal(t, "dark", body.CurrentTheme)
	assert.Equal(t, "#0F1115", body.Variables["--color-bg"])
}

func TestUnknownCookieValueIsIgnored(t *testing.T) {
	t.Parallel()

	resp := do(t, newTestServer(t, Options{}), http.MethodGet, "/api/theme", "", prefs("neon"))
	body := decode[ThemeResponse](t, resp)
	assert.Equal(t, "light", body.CurrentTheme)
}

func TestSetThemeWritesCookie(t *testing.T) {
	t.Parallel()

	resp := do(t, newTestServer(t, Options{}), http.MethodPut, "/api/theme", `{"name":"dark"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	c, ok := themeCookie(resp)
	require.True(t, ok)
	assert.Equal(t, "dark", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.WithinDuration(t, time.Now().Add(persistence.DefaultLifetime), c.Expires, time.Minute)

	body := decode[ThemeResponse](t, resp)
	assert.Equal(t, "dark", body.CurrentTheme)
}

func TestSetThemeUnknownIsNotFound(t *testing.T) {
	t.Parallel()

	resp := do(t, newTestServer(t, Options{}), http.MethodPut, "/api/theme", `{"name":"neon"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))

	_, written := themeCookie(resp)
	assert.False(t, written)

	problem := decode[ProblemDetail](t, resp)
	assert.Equal(t, http.StatusNotFound, problem.Status)
	assert.Equal(t, problemType+"theme-not-found", problem.Type)
	assert.Contains(t, problem.Detail, `"neon"`)
}

func TestSetThemeRejectsBadBodies(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, Options{})
	for _, body := range []string{`{`, `{"theme":"dark"}`, `{"name":""}`, `{"name":"dark"}{}`} {
		resp := do(t, h, http.MethodPut, "/api/theme", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
}

func TestToggleTheme(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, Options{})

	resp := do(t, h, http.MethodPost, "/api/theme/toggle", "", prefs("dark"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	c, ok := themeCookie(resp)
	require.True(t, ok)
	assert.Equal(t, "light", c.Value)
	assert.Equal(t, "light", decode[ThemeResponse](t, resp).CurrentTheme)

	resp = do(t, h, http.MethodPost, "/api/theme/toggle", "")
	assert.Equal(t, "dark", decode[ThemeResponse](t, resp).CurrentTheme)
}

func TestPatchConfigIsTransient(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, Options{})
	resp := do(t, h, http.MethodPatch, "/api/theme/config", `{"colors":{"accent":"#FF0000"}}`, prefs("dark"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Restoring refreshes the cookie; the override itself is never stored.
	c, ok := themeCookie(resp)
	require.True(t, ok)
	assert.Equal(t, "dark", c.Value)

	body := decode[ThemeResponse](t, resp)
	assert.Equal(t, "dark", body.CurrentTheme)
	assert.Equal(t, "#FF0000", body.Variables["--color-accent"])
	assert.Equal(t, "#0F1115", body.Variables["--color-bg"])

	resp = do(t, h, http.MethodGet, "/api/theme", "", prefs("dark"))
	assert.Equal(t, "#3B82F6", decode[ThemeResponse](t, resp).Variables["--color-accent"])
}

func TestPatchConfigRejectsInvalidColor(t *testing.T) {
	t.Parallel()

	resp := do(t, newTestServer(t, Options{}), http.MethodPatch, "/api/theme/config", `{"colors":{"accent":"#12"}}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, decode[ProblemDetail](t, resp).Detail, "colors.accent")
}

func TestListThemes(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, Options{Themes: []theme.Definition{
		{Name: "ocean", DisplayName: "Ocean"},
		{Name: "dark"},
	}})
	resp := do(t, h, http.MethodGet, "/api/themes", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	defs := decode[[]theme.Definition](t, resp)
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	assert.Equal(t, []string{"light", "dark", "ocean"}, names)
	assert.Equal(t, "Dark", defs[1].Label())
}

func TestCustomThemeThroughAPI(t *testing.T) {
	t.Parallel()

	accent := "#0EA5E9"
	h := newTestServer(t, Options{Themes: []theme.Definition{
		{Name: "ocean", Config: theme.Config{Colors: &theme.ColorConfig{Accent: accent}}},
	}})

	resp := do(t, h, http.MethodPut, "/api/theme", `{"name":"ocean"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[ThemeResponse](t, resp)
	assert.Equal(t, accent, body.Variables["--color-accent"])
	assert.Equal(t, "#FFFFFF", body.Variables["--color-bg"])
}

func TestNonASCIIThemeNameSurvivesCookie(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, Options{Themes: []theme.Definition{{Name: "sombre-é"}, {Name: `q"x`}}})

	for _, name := range []string{"sombre-é", `q"x`} {
		body, err := json.Marshal(ThemeRequest{Name: name})
		require.NoError(t, err)

		resp := do(t, h, http.MethodPut, "/api/theme", string(body))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		cookie, written := themeCookie(resp)
		require.True(t, written, "switching to %q must write the cookie", name)
		assert.Equal(t, url.QueryEscape(name), cookie.Value)

		resp = do(t, h, http.MethodGet, "/api/theme", "", cookie)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, name, decode[ThemeResponse](t, resp).CurrentTheme)
	}
}

func TestThemeCSS(t *testing.T) {
	t.Parallel()

	resp := do(t, newTestServer(t, Options{}), http.MethodGet, "/theme.css", "", prefs("dark"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/css; charset=utf-8", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	css := string(raw)
	assert.True(t, strings.HasPrefix(css, ":root {"))
	assert.Contains(t, css, "--color-bg: #0F1115;")
	assert.Contains(t, css, "--button-text: #FFFFFF;")
}

func TestPage(t *testing.T) {
	t.Parallel()

	resp := do(t, newTestServer(t, Options{}), http.MethodGet, "/", "", prefs("dark"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	html := string(raw)

	assert.Contains(t, html, `class="dark-theme"`)
	assert.Contains(t, html, "--color-bg: #0F1115")
	assert.Contains(t, html, "Theme Demo")
	assert.Contains(t, html, "Current Theme Mode:")
	assert.Contains(t, html, "Toggle Theme")
	for _, label := range []string{"Accent", "Success", "Warning", "Error"} {
		assert.Contains(t, html, label)
	}
	assert.Contains(t, html, `<li class="current">`)
}

func TestUnknownPathIsNotFound(t *testing.T) {
	t.Parallel()

	resp := do(t, newTestServer(t, Options{}), http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFormActionsRedirect(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, Options{})

	resp := do(t, h, http.MethodPost, "/toggle", "")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	c, ok := themeCookie(resp)
	require.True(t, ok)
	assert.Equal(t, "dark", c.Value)

	form := url.Values{"name": {"light"}}.Encode()
	req := httptest.NewRequest(http.MethodPost, "/use", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(prefs("dark"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	c, ok = themeCookie(rec.Result())
	require.True(t, ok)
	assert.Equal(t, "light", c.Value)
}

func TestDisabledPersistenceWritesNothing(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, Options{Persistence: persistence.Options{Enabled: persistence.Bool(false)}})

	resp := do(t, h, http.MethodPut, "/api/theme", `{"name":"dark"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_, written := themeCookie(resp)
	assert.False(t, written)

	resp = do(t, h, http.MethodGet, "/api/theme", "", prefs("dark"))
	assert.Equal(t, "light", decode[ThemeResponse](t, resp).CurrentTheme)
}

func TestCustomCookieKey(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, Options{Persistence: persistence.Options{Key: "ui-theme"}})

	resp := do(t, h, http.MethodGet, "/api/theme", "", &http.Cookie{Name: "ui-theme", Value: "dark"})
	assert.Equal(t, "dark", decode[ThemeResponse](t, resp).CurrentTheme)
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, Options{})

	resp := do(t, h, http.MethodGet, "/api/theme", "")
	_, err := uuid.Parse(resp.Header.Get(RequestIDHeader))
	require.NoError(t, err)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	req.Header.Set(RequestIDHeader, id)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(Options{}).Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/theme")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
