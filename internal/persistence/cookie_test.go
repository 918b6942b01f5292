package persistence

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCookie(t *testing.T) {
	t.Parallel()

	expires := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	got := FormatCookie("userPreferences", "dark", expires)

	assert.Equal(t, "userPreferences=dark;expires=Fri, 02 Jan 2026 02:04:05 GMT;path=/", got)

	got = FormatCookie("userPreferences", `sombre-é "q" \ x;y`, expires)
	assert.Equal(t, "userPreferences=sombre-%C3%A9+%22q%22+%5C+x%3By;expires=Fri, 02 Jan 2026 02:04:05 GMT;path=/", got)
}

func TestLookupCookie(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cookies string
		key     string
		want    string
		found   bool
	}{
		{name: "single", cookies: "userPreferences=dark", key: "userPreferences", want: "dark", found: true},
		{name: "among others", cookies: "a=1; userPreferences=light; b=2", key: "userPreferences", want: "light", found: true},
		{name: "leading spaces trimmed", cookies: "a=1;   userPreferences=dark", key: "userPreferences", want: "dark", found: true},
		{name: "prefix of another key", cookies: "xuserPreferences=dark", key: "userPreferences", found: false},
		{name: "key is a prefix", cookies: "userPreferencesOld=dark", key: "userPreferences", found: false},
		{name: "first match wins", cookies: "k=one; k=two", key: "k", want: "one", found: true},
		{name: "empty value", cookies: "k=", key: "k", want: "", found: true},
		{name: "missing", cookies: "a=1", key: "k", found: false},
		{name: "empty string", cookies: "", key: "k", found: false},
		{name: "empty key", cookies: "=x", key: "", found: false},
		{name: "escaped value", cookies: "a=1; k=sombre-%C3%A9", key: "k", want: "sombre-é", found: true},
		{name: "escaped quote and backslash", cookies: "k=q%22x%5C", key: "k", want: `q"x\`, found: true},
		{name: "invalid escape kept as stored", cookies: "k=100%", key: "k", want: "100%", found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := LookupCookie(tt.cookies, tt.key)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemoryJar(t *testing.T) {
	t.Parallel()

	jar := NewMemoryJar()
	raw, ok := jar.Cookie()
	require.True(t, ok)
	assert.Empty(t, raw)

	future := time.Now().Add(time.Hour)
	require.NoError(t, jar.SetCookie(FormatCookie("a", "1", future)))
	require.NoError(t, jar.SetCookie(FormatCookie("b", "2", future)))
	require.NoError(t, jar.SetCookie(FormatCookie("a", "3", future)))

	raw, _ = jar.Cookie()
	assert.Equal(t, "b=2; a=3", raw)

	require.NoError(t, jar.SetCookie(FormatCookie("b", "2", time.Now().Add(-time.Hour))))
	raw, _ = jar.Cookie()
	assert.Equal(t, "a=3", raw, "an expired assignment deletes the cookie")

	require.Error(t, jar.SetCookie("not a cookie"))
}

func TestHTTPJar(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "abc"})
	req.AddCookie(&http.Cookie{Name: "userPreferences", Value: "dark"})
	rec := httptest.NewRecorder()

	jar := NewHTTPJar(rec, req)
	raw, ok := jar.Cookie()
	require.True(t, ok)
	value, found := LookupCookie(raw, "userPreferences")
	require.True(t, found)
	assert.Equal(t, "dark", value)

	require.NoError(t, jar.SetCookie(FormatCookie("userPreferences", "light", time.Now().Add(time.Hour))))

	raw, _ = jar.Cookie()
	value, _ = LookupCookie(raw, "userPreferences")
	assert.Equal(t, "light", value, "writes are visible to later reads")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "userPreferences", cookies[0].Name)
	assert.Equal(t, "light", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
}

func TestHTTPJarWithoutRequest(t *testing.T) {
	t.Parallel()

	jar := NewHTTPJar(nil, nil)
	_, ok := jar.Cookie()
	assert.False(t, ok)
	assert.Error(t, jar.SetCookie("a=1"))
}

func TestFileJarPersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "cookies.json")

	jar, err := NewFileJar(path)
	require.NoError(t, err)
	assert.Equal(t, path, jar.Path())

	raw, ok := jar.Cookie()
	require.True(t, ok)
	assert.Empty(t, raw)

	require.NoError(t, jar.SetCookie(FormatCookie("userPreferences", "dark", time.Now().Add(time.Hour))))

	reopened, err := NewFileJar(path)
	require.NoError(t, err)
	raw, _ = reopened.Cookie()
	assert.Equal(t, "userPreferences=dark", raw)
}

func TestFileJarDropsExpiredCookies(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cookies.json")
	jar, err := NewFileJar(path)
	require.NoError(t, err)

	require.NoError(t, jar.SetCookie(FormatCookie("a", "1", time.Now().Add(time.Hour))))
	require.NoError(t, jar.SetCookie(FormatCookie("a", "1", time.Now().Add(-time.Hour))))

	reopened, err := NewFileJar(path)
	require.NoError(t, err)
	raw, _ := reopened.Cookie()
	assert.Empty(t, raw)
}

func TestFileJarRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cookies.json")
	require.NoError(t, writeFile(path, "{not json"))

	_, err := NewFileJar(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse cookie file")
}

func TestCookieJarsRoundTripAnyThemeName(t *testing.T) {
	t.Parallel()

	names := []string{"ocean", "sombre-é", `q"x`, `back\slash`, "semi;colon", "with space", "100%", "日本"}

	jars := []struct {
		name string
		// pair returns the jar written to and the jar a later restore reads.
		pair func(t *testing.T) (write CookieJar, read func() CookieJar)
	}{
		{
			name: "memory",
			pair: func(t *testing.T) (CookieJar, func() CookieJar) {
				jar := NewMemoryJar()
				return jar, func() CookieJar { return jar }
			},
		},
		{
			name: "file",
			pair: func(t *testing.T) (CookieJar, func() CookieJar) {
				path := filepath.Join(t.TempDir(), "cookies.json")
				jar, err := NewFileJar(path)
				require.NoError(t, err)
				return jar, func() CookieJar {
					reopened, err := NewFileJar(path)
					require.NoError(t, err)
					return reopened
				}
			},
		},
		{
			name: "http",
			pair: func(t *testing.T) (CookieJar, func() CookieJar) {
				rec := httptest.NewRecorder()
				jar := NewHTTPJar(rec, httptest.NewRequest(http.MethodGet, "/", nil))
				return jar, func() CookieJar {
					next := httptest.NewRequest(http.MethodGet, "/", nil)
					for _, c := range rec.Result().Cookies() {
						next.AddCookie(c)
					}
					return NewHTTPJar(httptest.NewRecorder(), next)
				}
			},
		},
	}

	for _, jt := range jars {
		for _, name := range names {
			t.Run(jt.name+"/"+name, func(t *testing.T) {
				log, buf := newBufferedLogger(t)
				write, read := jt.pair(t)

				New(Options{Jar: write}, log).Persist(context.Background(), name)
				assert.Empty(t, buf.String(), "persist must not fail")

				got, ok := New(Options{Jar: read()}, log).Restore(context.Background())
				require.True(t, ok)
				assert.Equal(t, name, got)
			})
		}
	}
}
