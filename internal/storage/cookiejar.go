package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// cookieTimeFormat matches the Expires attribute format of browser
// cookies (RFC 1123 with an explicit GMT zone).
const cookieTimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// CookieJarStore persists values as cookie-style records in a single
// text file: one `name=<percent-encoded JSON>; Expires=...; Path=/` line
// per key. Records carry a one-year expiry and the JSON payload is
// percent-encoded, so the file reads like a browser cookie jar.
type CookieJarStore struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewCookieJarStore opens (or creates the directory for) a cookie jar
// file at path.
func NewCookieJarStore(path string) (*CookieJarStore, error) {
	if path == "" {
		return nil, fmt.Errorf("cookie jar path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &CookieJarStore{path: path, now: time.Now}, nil
}

// Load implements Store.
func (s *CookieJarStore) Load(_ context.Context, key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return false, err
	}
	rec, ok := records[key]
	if !ok {
		return false, nil
	}
	raw, err := url.QueryUnescape(rec.value)
	if err != nil {
		return false, fmt.Errorf("failed to decode value for %q: %w", key, err)
	}
	if err := decodeJSON([]byte(raw), v); err != nil {
		return false, fmt.Errorf("failed to parse value for %q: %w", key, err)
	}
	return true, nil
}

// Save implements Store. The whole value is rewritten under key with an
// expiry one calendar year from now; other keys in the jar are kept.
func (s *CookieJarStore) Save(_ context.Context, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize value for %q: %w", key, err)
	}

	records, err := s.readAll()
	if err != nil {
		// A corrupt jar is rebuilt from scratch rather than blocking saves.
		records = map[string]cookieRecord{}
	}
	records[key] = cookieRecord{
		value:   url.QueryEscape(string(data)),
		expires: s.now().AddDate(1, 0, 0),
	}
	return s.writeAll(records)
}

// Close implements Store. The jar holds no open resources.
func (s *CookieJarStore) Close() error {
	return nil
}

type cookieRecord struct {
	expires time.Time
	value   string
}

// readAll parses the jar file, dropping expired and malformed lines.
func (s *CookieJarStore) readAll() (map[string]cookieRecord, error) {
	records := make(map[string]cookieRecord)

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return records, nil
		}
		return nil, fmt.Errorf("failed to open cookie jar: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, rec, ok := parseCookieLine(line)
		if !ok {
			continue
		}
		if !rec.expires.IsZero() && rec.expires.Before(s.now()) {
			continue
		}
		records[name] = rec
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cookie jar: %w", err)
	}
	return records, nil
}

func parseCookieLine(line string) (string, cookieRecord, bool) {
	parts := strings.Split(line, ";")
	name, value, ok := strings.Cut(strings.TrimSpace(parts[0]), "=")
	if !ok || name == "" {
		return "", cookieRecord{}, false
	}
	rec := cookieRecord{value: value}
	for _, attr := range parts[1:] {
		k, v, _ := strings.Cut(strings.TrimSpace(attr), "=")
		if strings.EqualFold(k, "Expires") {
			if t, err := time.Parse(cookieTimeFormat, v); err == nil {
				rec.expires = t
			}
		}
	}
	return name, rec, true
}

// writeAll rewrites the jar atomically via a temp file rename.
func (s *CookieJarStore) writeAll(records map[string]cookieRecord) error {
	var b strings.Builder
	for name, rec := range records {
		fmt.Fprintf(&b, "%s=%s; Expires=%s; Path=/\n",
			name, rec.value, rec.expires.UTC().Format(cookieTimeFormat))
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("failed to write cookie jar: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace cookie jar: %w", err)
	}
	return nil
}
