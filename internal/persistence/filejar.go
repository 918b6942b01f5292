package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const fileJarVersion = "1.0"

// jarFile is the on-disk layout of a FileJar.
type jarFile struct {
	Version string     `json:"version"`
	Cookies []jarEntry `json:"cookies"`
}

// FileJar is a CookieJar persisted as a JSON file, so a choice made by one
// CLI invocation is visible to the next.
type FileJar struct {
	path    string
	mu      sync.Mutex
	version string
	cookies cookieSet
	now     func() time.Time
}

// DefaultJarPath returns the cookie file under the user's config directory.
func DefaultJarPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, "themekit", "cookies.json"), nil
}

// NewFileJar creates a FileJar and loads it from disk. A missing file is an
// empty jar.
func NewFileJar(path string) (*FileJar, error) {
	j := &FileJar{
		path:    path,
		version: fileJarVersion,
		now:     time.Now,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cookie directory: %w", err)
	}

	if err := j.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return j, nil
}

// Path returns the backing file.
func (j *FileJar) Path() string {
	return j.path
}

// Load reads the jar from disk.
func (j *FileJar) Load() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	data, err := os.ReadFile(j.path)
	if err != nil {
		return err
	}

	var file jarFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse cookie file: %w", err)
	}

	j.version = file.Version
	j.cookies = file.Cookies
	return nil
}

// save writes the jar atomically. Callers hold j.mu.
func (j *FileJar) save() error {
	now := j.now()
	live := make([]jarEntry, 0, len(j.cookies))
	for _, entry := range j.cookies {
		if !entry.expired(now) {
			live = append(live, entry)
		}
	}

	data, err := json.MarshalIndent(jarFile{Version: j.version, Cookies: live}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cookie file: %w", err)
	}

	tmpPath := j.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, j.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Cookie implements CookieJar.
func (j *FileJar) Cookie() (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cookies.String(j.now()), true
}

// SetCookie implements CookieJar and saves the jar.
func (j *FileJar) SetCookie(raw string) error {
	_, entry, err := parseAssignment(raw)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.cookies = j.cookies.put(entry, j.now())
	return j.save()
}
