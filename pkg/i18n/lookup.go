package i18n

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Option configures a Lookup.
type Option func(*Lookup)

// WithLoader replaces the loader used for languages the widget does not
// translate itself.
func WithLoader(loader Loader) Option {
	return func(l *Lookup) {
		if loader != nil {
			l.loader = loader
		}
	}
}

// WithSearchPath reads translation files from dir instead of the embedded
// bundle.
func WithSearchPath(dir string) Option {
	return func(l *Lookup) {
		if strings.TrimSpace(dir) == "" {
			return
		}
		l.loader = NewDirLoader(dir)
	}
}

type cacheKey struct {
	source   string
	language string
}

// Lookup resolves translation tables per language. Tables start from the
// English defaults and are memoized per language until Reset is called.
type Lookup struct {
	mu     sync.Mutex
	loader Loader
	cache  map[cacheKey]Table
}

// NewLookup returns a Lookup reading the embedded translation bundle unless
// options say otherwise.
func NewLookup(options ...Option) *Lookup {
	l := &Lookup{
		loader: NewFSLoader(EmbeddedFS()),
		cache:  make(map[cacheKey]Table),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Table returns the translation table for language. Built-in languages never
// reach the loader. A language without a usable resource, missing or
// malformed, yields the English table. The returned table is a copy.
func (l *Lookup) Table(language string) (Table, error) {
	return l.table(cacheKey{language: normalizeLanguage(language)}, l.loader)
}

// TableAt is Table with translation files read from searchPath. An empty
// searchPath behaves like Table.
func (l *Lookup) TableAt(language, searchPath string) (Table, error) {
	searchPath = strings.TrimSpace(searchPath)
	if searchPath == "" {
		return l.Table(language)
	}
	key := cacheKey{source: searchPath, language: normalizeLanguage(language)}
	return l.table(key, NewDirLoader(searchPath))
}

// Translate returns the string for key in language. Unknown keys return an
// error wrapping ErrMissingKey.
func (l *Lookup) Translate(language, key string) (string, error) {
	table, err := l.Table(language)
	if err != nil {
		return "", err
	}
	msg, ok := table[strings.TrimSpace(key)]
	if !ok {
		return "", fmt.Errorf("%w: %q (%s)", ErrMissingKey, key, normalizeLanguage(language))
	}
	return msg, nil
}

// Reset drops every memoized table.
func (l *Lookup) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[cacheKey]Table)
}

func (l *Lookup) table(key cacheKey, loader Loader) (Table, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, ok := l.cache[key]; ok {
		return cached.Clone(), nil
	}

	table := DefaultTable()
	if !IsBuiltIn(key.language) && loader != nil {
		loaded, err := loader.LoadTranslations(key.language)
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrMalformed):
		case err != nil:
			return nil, err
		default:
			table.Overlay(loaded)
		}
	}

	if l.cache == nil {
		l.cache = make(map[cacheKey]Table)
	}
	l.cache[key] = table
	return table.Clone(), nil
}

func normalizeLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return DefaultLanguage
	}
	return language
}
