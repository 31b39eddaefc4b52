// Package i18n holds the locale state of the console and the embedded
// translation catalogs. The same store feeds both the interface strings and
// the "lang" header of API requests.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

//go:embed locales/*.json
var localeFS embed.FS

const DefaultLocale = "ru"

var supported = []string{"ru", "uz", "en"}

var ErrUnsupportedLocale = errors.New("unsupported locale")

// Store is an explicit, injectable locale store. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	locale   string
	catalogs map[string]map[string]string
}

// NewStore loads the embedded catalogs and selects the initial locale,
// falling back to the default when the requested one is unknown.
func NewStore(locale string) (*Store, error) {
	catalogs := make(map[string]map[string]string, len(supported))
	for _, l := range supported {
		data, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.json", l))
		if err != nil {
			return nil, fmt.Errorf("reading catalog %q: %w", l, err)
		}
		var m map[string]string
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing catalog %q: %w", l, err)
		}
		catalogs[l] = m
	}

	s := &Store{locale: DefaultLocale, catalogs: catalogs}
	if isSupported(locale) {
		s.locale = locale
	}
	return s, nil
}

func isSupported(locale string) bool {
	for _, l := range supported {
		if l == locale {
			return true
		}
	}
	return false
}

// Supported returns the locales the console can switch between.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

func (s *Store) Locale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

func (s *Store) SetLocale(locale string) error {
	if !isSupported(locale) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = locale
	return nil
}

// T resolves key in the active locale, falling back to the default locale
// and finally to the key itself, so a missing translation never hides a
// screen.
func (s *Store) T(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.catalogs[s.locale][key]; ok {
		return v
	}
	if v, ok := s.catalogs[DefaultLocale][key]; ok {
		return v
	}
	return key
}

// Tf resolves key and formats it with args.
func (s *Store) Tf(key string, args ...any) string {
	return fmt.Sprintf(s.T(key), args...)
}
