package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

//go:embed translations/*
var embeddedTranslations embed.FS

// FilePrefix is the leading segment of translation file names, as in
// translations.it.yaml.
const FilePrefix = "translations"

var (
	// ErrNotFound signals that a loader has no resource for the language.
	ErrNotFound = errors.New("i18n: translations not found")
	// ErrMissingKey signals a lookup for a key absent from the table.
	ErrMissingKey = errors.New("i18n: missing translation key")
	// ErrMalformed signals a translation file that is empty or not a flat
	// JSON or YAML map of strings.
	ErrMalformed = errors.New("i18n: malformed translations")
)

var defaultExtensions = []string{".yaml", ".yml", ".json"}

// Loader resolves the translation table for a language.
type Loader interface {
	LoadTranslations(language string) (Table, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(language string) (Table, error)

// LoadTranslations calls f.
func (f LoaderFunc) LoadTranslations(language string) (Table, error) {
	return f(language)
}

// FSLoader reads translation files named <prefix>.<language>.<ext> from an
// fs.FS.
type FSLoader struct {
	fsys       fs.FS
	prefix     string
	extensions []string
}

// FSLoaderOption configures an FSLoader.
type FSLoaderOption func(*FSLoader)

// WithFilePrefix overrides the file name prefix.
func WithFilePrefix(prefix string) FSLoaderOption {
	return func(l *FSLoader) {
		if trimmed := strings.Trim(strings.TrimSpace(prefix), "."); trimmed != "" {
			l.prefix = trimmed
		}
	}
}

// WithExtensions overrides the probed extensions, in priority order.
func WithExtensions(exts ...string) FSLoaderOption {
	return func(l *FSLoader) {
		var out []string
		for _, ext := range exts {
			trimmed := strings.TrimSpace(ext)
			if trimmed == "" {
				continue
			}
			if !strings.HasPrefix(trimmed, ".") {
				trimmed = "." + trimmed
			}
			out = append(out, trimmed)
		}
		if len(out) > 0 {
			l.extensions = out
		}
	}
}

// NewFSLoader builds a loader over fsys. A nil fsys never finds anything.
func NewFSLoader(fsys fs.FS, options ...FSLoaderOption) *FSLoader {
	l := &FSLoader{
		fsys:       fsys,
		prefix:     FilePrefix,
		extensions: defaultExtensions,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// NewDirLoader builds a loader over a directory on disk.
func NewDirLoader(dir string, options ...FSLoaderOption) *FSLoader {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return NewFSLoader(nil, options...)
	}
	return NewFSLoader(os.DirFS(dir), options...)
}

// EmbeddedFS exposes the translation files bundled with the package.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedTranslations, "translations")
	if err != nil {
		return embeddedTranslations
	}
	return sub
}

// LoadTranslations reads the first matching file for language.
func (l *FSLoader) LoadTranslations(language string) (Table, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	if l == nil || l.fsys == nil || !validLanguage(language) {
		return nil, ErrNotFound
	}

	for _, ext := range l.extensions {
		name := l.prefix + "." + language + ext
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", name, err)
		}
		return parseTable(data, name)
	}
	return nil, ErrNotFound
}

func parseTable(data []byte, source string) (Table, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrMalformed, source)
	}

	raw := map[string]string{}
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = map[string]string{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %s is not valid JSON or YAML", ErrMalformed, source)
		}
	}

	out := make(Table, len(raw))
	for key, value := range raw {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[key] = sanitizeText(value)
	}
	return out, nil
}

// Language codes end up in file names; keep them to letters, digits and
// dashes.
func validLanguage(language string) bool {
	if language == "" || len(language) > 16 {
		return false
	}
	for _, r := range language {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips markup from translated strings. The policy escapes the
// surviving text, so entities are decoded again: escaping belongs to the
// template that prints the value.
func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(trimmed)))
}
