package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-captchatheme/pkg/i18n"
	"github.com/goliatone/go-captchatheme/pkg/options"
	rendertemplate "github.com/goliatone/go-captchatheme/pkg/render/template"
	"github.com/goliatone/go-captchatheme/pkg/render/template/gotemplate"
	"github.com/goliatone/go-captchatheme/pkg/themes"
)

// Request carries the per-call overrides. An empty ThemeName means the caller
// did not pick a theme.
type Request struct {
	ThemeName string
	Options   map[string]any
}

// Resolver holds one options record and turns it into the RecaptchaOptions
// snippet. The record is mutated by every Render call, so a Resolver must not
// be shared between concurrent requests.
type Resolver struct {
	record    options.Record
	lookup    *i18n.Lookup
	selector  theme.ThemeSelector
	templates rendertemplate.TemplateRenderer
}

// New constructs a resolver starting from options.Defaults.
func New(opts ...Option) (*Resolver, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("resolver: configure template renderer: %w", err)
		}
		renderer = engine
	}

	lookup := cfg.lookup
	if lookup == nil {
		lookup = i18n.NewLookup(i18n.WithSearchPath(cfg.translationsDir))
	}

	selector := cfg.selector
	if selector == nil {
		selector = themes.NewCatalog()
	}

	record := options.Defaults()
	for _, values := range cfg.defaults {
		record.Merge(values)
	}

	return &Resolver{
		record:    record,
		lookup:    lookup,
		selector:  selector,
		templates: renderer,
	}, nil
}

// Options returns a copy of the current record.
func (r *Resolver) Options() options.Record {
	return r.record.Clone()
}

// Lookup exposes the translation lookup backing the resolver.
func (r *Resolver) Lookup() *i18n.Lookup {
	return r.lookup
}

// Render merges the request into the record and returns the snippet. An
// empty string means the widget should keep its built-in look: the record
// is at its defaults or names a theme the widget does not know.
func (r *Resolver) Render(ctx context.Context, req Request) (string, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}

	r.record.Merge(req.Options)
	if name := strings.TrimSpace(req.ThemeName); name != "" {
		r.record.Theme = name
	}

	if err := r.ensureTranslations(); err != nil {
		return "", err
	}

	if !r.record.HasCustomizations() && (r.record.Theme == "" || r.record.Theme == themes.Default) {
		return "", nil
	}

	switch {
	case themes.IsStandard(r.record.Theme):
		sel, err := r.selectTheme(r.record.Theme)
		if err != nil {
			return "", err
		}
		r.record.CustomThemeWidget = ""
		return r.renderScript(sel)

	case r.record.Theme == themes.Custom:
		sel, err := r.selectTheme(r.record.Theme)
		if err != nil {
			return "", err
		}
		if r.record.CustomThemeWidget == "" {
			r.record.CustomThemeWidget = themes.Token(sel, themes.TokenWidgetID, themes.DefaultWidgetID)
		}
		script, err := r.renderScript(sel)
		if err != nil {
			return "", err
		}
		widget, err := r.renderWidget(sel)
		if err != nil {
			return "", err
		}
		return script + "\n" + widget, nil

	default:
		return "", nil
	}
}

// SetTranslation switches the record to language and stores its translation
// table in custom_translations, replacing any previous table.
func (r *Resolver) SetTranslation(language string) error {
	return r.SetTranslationAt(language, "")
}

// SetTranslationAt is SetTranslation reading translation files from
// searchPath.
func (r *Resolver) SetTranslationAt(language, searchPath string) error {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		language = i18n.DefaultLanguage
	}

	table, err := r.lookup.TableAt(language, searchPath)
	if err != nil {
		return fmt.Errorf("resolver: set translation %q: %w", language, err)
	}

	r.record.Lang = language
	r.record.CustomTranslations = table
	return nil
}

func (r *Resolver) ensureTranslations() error {
	lang := r.record.Lang
	if lang == "" || i18n.IsBuiltIn(lang) || r.record.CustomTranslations != nil {
		return nil
	}

	table, err := r.lookup.Table(lang)
	if err != nil {
		return fmt.Errorf("resolver: load translations %q: %w", lang, err)
	}
	r.record.CustomTranslations = table
	return nil
}

func (r *Resolver) selectTheme(name string) (*theme.Selection, error) {
	sel, err := r.selector.Select(name, "")
	if errors.Is(err, themes.ErrUnknownTheme) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolver: select theme %q: %w", name, err)
	}
	return sel, nil
}

func (r *Resolver) renderScript(sel *theme.Selection) (string, error) {
	payload, err := json.Marshal(r.record)
	if err != nil {
		return "", fmt.Errorf("resolver: encode options: %w", err)
	}

	name := themes.Partial(sel, themes.PartialScript, themes.ScriptTemplate)
	out, err := r.templates.RenderTemplate(name, map[string]any{
		"options": string(payload),
	})
	if err != nil {
		return "", fmt.Errorf("resolver: render script: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func (r *Resolver) renderWidget(sel *theme.Selection) (string, error) {
	table, err := r.lookup.Table(r.record.Lang)
	if err != nil {
		return "", fmt.Errorf("resolver: load translations %q: %w", r.record.Lang, err)
	}
	table.Overlay(r.record.CustomTranslations)

	name := themes.Partial(sel, themes.PartialWidget, themes.WidgetTemplate)
	out, err := r.templates.RenderTemplate(name, map[string]any{
		"widget_id": r.record.CustomThemeWidget,
		"lang":      r.record.Lang,
		"t":         map[string]string(table),
	})
	if err != nil {
		return "", fmt.Errorf("resolver: render widget: %w", err)
	}
	return strings.TrimSpace(out), nil
}
