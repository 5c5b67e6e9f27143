package resolver

import (
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-captchatheme/pkg/i18n"
	rendertemplate "github.com/goliatone/go-captchatheme/pkg/render/template"
)

// Option configures a Resolver.
type Option func(*config)

type config struct {
	defaults         []map[string]any
	lookup           *i18n.Lookup
	translationsDir  string
	selector         theme.ThemeSelector
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithDefaults merges values into the starting record, the way a
// configuration file would. May be passed more than once.
func WithDefaults(values map[string]any) Option {
	return func(cfg *config) {
		if len(values) == 0 {
			return
		}
		cfg.defaults = append(cfg.defaults, values)
	}
}

// WithLookup shares a translation lookup, and its cache, with the resolver.
func WithLookup(lookup *i18n.Lookup) Option {
	return func(cfg *config) {
		if lookup != nil {
			cfg.lookup = lookup
		}
	}
}

// WithTranslationsDir reads translation files from dir. An empty dir keeps
// the current setting. Ignored when WithLookup is also given.
func WithTranslationsDir(dir string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(dir); trimmed != "" {
			cfg.translationsDir = trimmed
		}
	}
}

// WithThemeSelector replaces the built-in theme catalog.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(cfg *config) {
		if selector != nil {
			cfg.selector = selector
		}
	}
}

// WithTemplatesFS supplies an alternate template bundle. Template paths come
// from the selected theme manifest.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(path) == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}
