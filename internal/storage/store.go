// Package storage persists whole-document values in a key/value store.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
)

// Keys under which the two application documents are persisted.
const (
	// KeyFinanceData is the key for the entry collections document.
	KeyFinanceData = "financeData"
	// KeyFinanceSettings is the key for the settings document.
	KeyFinanceSettings = "financeSettings"
)

// Store is a JSON key/value store. Save overwrites the previous value
// for the key entirely; there is no merge. Values persist for one
// calendar year from the last save.
type Store interface {
	// Load reads the value stored under key into v. It returns false
	// when the key is absent or expired. On any failure, including a
	// parse failure, v is left untouched.
	Load(ctx context.Context, key string, v any) (bool, error)
	// Save serializes v and stores it under key.
	Save(ctx context.Context, key string, v any) error
	// Close releases any resources held by the store.
	Close() error
}

// LoadOrDefault loads key into v, falling back to assigning nothing when
// the key is missing or unreadable. Corrupt persisted values are
// recovered silently: the caller's default stays in place and the
// failure is only logged at debug level.
func LoadOrDefault(ctx context.Context, s Store, key string, v any) {
	found, err := s.Load(ctx, key, v)
	if err != nil {
		slog.Debug("discarding unreadable stored value", "key", key, "error", err)
		return
	}
	if !found {
		slog.Debug("no stored value, using default", "key", key)
	}
}

// decodeJSON unmarshals data into a fresh value of v's type and assigns
// it to v only when the whole document parses. json.Unmarshal writes
// fields as it goes, so decoding straight into v would leave it half
// populated when a later field has the wrong type.
func decodeJSON(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer")
	}
	tmp := reflect.New(rv.Type().Elem())
	if err := json.Unmarshal(data, tmp.Interface()); err != nil {
		return err
	}
	rv.Elem().Set(tmp.Elem())
	return nil
}
