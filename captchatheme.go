package captchatheme

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-captchatheme/pkg/i18n"
	"github.com/goliatone/go-captchatheme/pkg/options"
	"github.com/goliatone/go-captchatheme/pkg/resolver"
)

// Request aliases resolver.Request for callers of the top-level package.
type Request = resolver.Request

// Record aliases the options record held by a resolver.
type Record = options.Record

// NewResolver exposes the resolver constructor from the top-level module.
func NewResolver(opts ...resolver.Option) (*resolver.Resolver, error) {
	return resolver.New(opts...)
}

// Render builds a fresh resolver and renders a single request with it. It is
// the simplest entry point for callers that hold no state between requests.
func Render(ctx context.Context, themeName string, overrides map[string]any, opts ...resolver.Option) (string, error) {
	r, err := resolver.New(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(ctx, resolver.Request{
		ThemeName: themeName,
		Options:   overrides,
	})
}

// WithThemeSelector passes a go-theme selector through to the resolver so
// theme manifests can swap the script and widget templates.
func WithThemeSelector(selector theme.ThemeSelector) resolver.Option {
	return resolver.WithThemeSelector(selector)
}

// EmbeddedTemplates exposes the built-in script and widget templates so
// callers can copy or extend them.
func EmbeddedTemplates() fs.FS {
	return resolver.TemplatesFS()
}

// EmbeddedTranslations exposes the bundled translation files.
func EmbeddedTranslations() fs.FS {
	return i18n.EmbeddedFS()
}
