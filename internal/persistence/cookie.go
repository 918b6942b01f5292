package persistence

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// CookieJar is a document-style cookie store. Cookie returns the whole cookie
// string ("a=1; b=2") and false when there is no document to read from.
// SetCookie accepts a single Set-Cookie style assignment.
type CookieJar interface {
	Cookie() (string, bool)
	SetCookie(raw string) error
}

// FormatCookie renders the assignment written by the cookie strategy:
// "key=value;expires=<UTC date>;path=/". The value is query-escaped so any
// name survives the cookie grammar; LookupCookie reverses it.
func FormatCookie(key, value string, expires time.Time) string {
	return fmt.Sprintf("%s=%s;expires=%s;path=/", key, url.QueryEscape(value), expires.UTC().Format(http.TimeFormat))
}

// LookupCookie returns the unescaped value of the first segment of cookies
// whose name is exactly key. Segments are split on ';' and leading spaces are
// trimmed. A value that is not valid query escaping is returned as stored.
func LookupCookie(cookies, key string) (string, bool) {
	if key == "" {
		return "", false
	}
	prefix := key + "="
	for _, segment := range strings.Split(cookies, ";") {
		segment = strings.TrimLeft(segment, " ")
		if strings.HasPrefix(segment, prefix) {
			raw := segment[len(prefix):]
			if value, err := url.QueryUnescape(raw); err == nil {
				return value, true
			}
			return raw, true
		}
	}
	return "", false
}

type jarEntry struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Expires time.Time `json:"expires,omitzero"`
}

func (e jarEntry) expired(now time.Time) bool {
	return !e.Expires.IsZero() && !e.Expires.After(now)
}

// parseAssignment parses a Set-Cookie style assignment into an entry.
func parseAssignment(raw string) (*http.Cookie, jarEntry, error) {
	cookie, err := http.ParseSetCookie(raw)
	if err != nil {
		return nil, jarEntry{}, fmt.Errorf("invalid cookie %q: %w", raw, err)
	}
	entry := jarEntry{Name: cookie.Name, Value: cookie.Value}
	switch {
	case cookie.MaxAge < 0:
		entry.Expires = time.Unix(0, 0)
	case cookie.MaxAge > 0:
		entry.Expires = time.Now().Add(time.Duration(cookie.MaxAge) * time.Second)
	case !cookie.Expires.IsZero():
		entry.Expires = cookie.Expires
	}
	return cookie, entry, nil
}

// cookieSet is an ordered set of cookies keyed by name.
type cookieSet []jarEntry

func (s cookieSet) put(entry jarEntry, now time.Time) cookieSet {
	out := s[:0]
	for _, existing := range s {
		if existing.Name != entry.Name {
			out = append(out, existing)
		}
	}
	if !entry.expired(now) {
		out = append(out, entry)
	}
	return out
}

func (s cookieSet) String(now time.Time) string {
	parts := make([]string, 0, len(s))
	for _, entry := range s {
		if entry.expired(now) {
			continue
		}
		parts = append(parts, entry.Name+"="+entry.Value)
	}
	return strings.Join(parts, "; ")
}

// MemoryJar is an in-process document cookie store.
type MemoryJar struct {
	mu      sync.Mutex
	cookies cookieSet
	now     func() time.Time
}

// NewMemoryJar returns an empty jar.
func NewMemoryJar() *MemoryJar {
	return &MemoryJar{now: time.Now}
}

// Cookie implements CookieJar.
func (j *MemoryJar) Cookie() (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cookies.String(j.clock()), true
}

// SetCookie implements CookieJar.
func (j *MemoryJar) SetCookie(raw string) error {
	_, entry, err := parseAssignment(raw)
	if err != nil {
		return err
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.cookies = j.cookies.put(entry, j.clock())
	return nil
}

func (j *MemoryJar) clock() time.Time {
	if j.now == nil {
		return time.Now()
	}
	return j.now()
}

// HTTPJar reads cookies from an incoming request and writes assignments as
// Set-Cookie headers on the response. Assignments are also visible to later
// reads through the same jar. Writes must happen before the response body
// is written.
type HTTPJar struct {
	w http.ResponseWriter
	r *http.Request

	mu      sync.Mutex
	written cookieSet
}

// NewHTTPJar binds a jar to a request/response pair.
func NewHTTPJar(w http.ResponseWriter, r *http.Request) *HTTPJar {
	return &HTTPJar{w: w, r: r}
}

// Cookie implements CookieJar.
func (j *HTTPJar) Cookie() (string, bool) {
	if j.r == nil {
		return "", false
	}
	now := time.Now()
	set := cookieSet{}
	for _, c := range j.r.Cookies() {
		set = set.put(jarEntry{Name: c.Name, Value: c.Value}, now)
	}

	j.mu.Lock()
	for _, entry := range j.written {
		set = set.put(entry, now)
	}
	j.mu.Unlock()

	return set.String(now), true
}

// SetCookie implements CookieJar.
func (j *HTTPJar) SetCookie(raw string) error {
	if j.w == nil {
		return fmt.Errorf("no response to write cookie to")
	}
	cookie, entry, err := parseAssignment(raw)
	if err != nil {
		return err
	}

	j.mu.Lock()
	j.written = append(j.written, entry)
	j.mu.Unlock()

	http.SetCookie(j.w, cookie)
	return nil
}
