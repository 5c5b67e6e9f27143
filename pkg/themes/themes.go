package themes

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// Theme names understood by the widget.
const (
	Red        = "red"
	White      = "white"
	BlackGlass = "blackglass"
	Clean      = "clean"
	Custom     = "custom"

	// Default is the look the widget renders when no options are injected.
	Default = Red
)

// Manifest keys consumed by the resolver.
const (
	PartialScript = "captcha.script"
	PartialWidget = "captcha.widget"
	TokenWidgetID = "widget_id"

	DefaultWidgetID = "recaptcha_widget"
)

// Default template names inside the embedded bundle.
const (
	ScriptTemplate = "templates/script.tpl"
	WidgetTemplate = "templates/custom_widget.tpl"
)

const manifestVersion = "1.0.0"

// ErrUnknownTheme is returned by Catalog.Select for names it does not hold.
var ErrUnknownTheme = errors.New("themes: unknown theme")

var standardThemes = []string{Red, White, BlackGlass, Clean}

// StandardThemes lists the built-in looks that need no extra markup.
func StandardThemes() []string {
	out := make([]string, len(standardThemes))
	copy(out, standardThemes)
	return out
}

// IsStandard reports whether name is one of the built-in looks.
func IsStandard(name string) bool {
	for _, candidate := range standardThemes {
		if candidate == name {
			return true
		}
	}
	return false
}

// IsKnown reports whether name is a standard theme or the custom theme.
func IsKnown(name string) bool {
	return name == Custom || IsStandard(name)
}

// Names returns every known theme name, standard ones first.
func Names() []string {
	return append(StandardThemes(), Custom)
}

// Catalog is a go-theme selector over captcha theme manifests.
type Catalog struct {
	mu        sync.RWMutex
	manifests map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*Catalog)(nil)

// NewCatalog returns a catalog seeded with DefaultManifests.
func NewCatalog() *Catalog {
	c := &Catalog{manifests: make(map[string]*theme.Manifest)}
	for _, manifest := range DefaultManifests() {
		c.manifests[manifest.Name] = manifest
	}
	return c
}

// Register adds or replaces a manifest. Partials missing from the replacement
// fall back to the defaults of the theme it replaces.
func (c *Catalog) Register(manifest *theme.Manifest) error {
	if manifest == nil {
		return fmt.Errorf("themes: manifest is required")
	}
	name := strings.TrimSpace(manifest.Name)
	if name == "" {
		return fmt.Errorf("themes: manifest name is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	stored := *manifest
	stored.Name = name
	if existing, ok := c.manifests[name]; ok {
		stored.Templates = mergeStrings(existing.Templates, manifest.Templates)
		stored.Tokens = mergeStrings(existing.Tokens, manifest.Tokens)
	} else {
		stored.Templates = mergeStrings(nil, manifest.Templates)
		stored.Tokens = mergeStrings(nil, manifest.Tokens)
	}
	c.manifests[name] = &stored
	return nil
}

// Select resolves a theme by name. Variants are not used by the widget and
// are passed through untouched.
func (c *Catalog) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	manifest, ok := c.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return &theme.Selection{
		Theme:    manifest.Name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// List returns the registered theme names in lexical order.
func (c *Catalog) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.manifests))
	for name := range c.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultManifests builds one manifest per known theme.
func DefaultManifests() []*theme.Manifest {
	out := make([]*theme.Manifest, 0, len(standardThemes)+1)
	for _, name := range standardThemes {
		out = append(out, &theme.Manifest{
			Name:    name,
			Version: manifestVersion,
			Templates: map[string]string{
				PartialScript: ScriptTemplate,
			},
		})
	}
	out = append(out, &theme.Manifest{
		Name:    Custom,
		Version: manifestVersion,
		Templates: map[string]string{
			PartialScript: ScriptTemplate,
			PartialWidget: WidgetTemplate,
		},
		Tokens: map[string]string{
			TokenWidgetID: DefaultWidgetID,
		},
	})
	return out
}

// Partial returns the template registered under key, or fallback.
func Partial(sel *theme.Selection, key, fallback string) string {
	if sel == nil || sel.Manifest == nil {
		return fallback
	}
	if value := strings.TrimSpace(sel.Manifest.Templates[key]); value != "" {
		return value
	}
	return fallback
}

// Token returns the token registered under key, or fallback.
func Token(sel *theme.Selection, key, fallback string) string {
	if sel == nil || sel.Manifest == nil {
		return fallback
	}
	if value := strings.TrimSpace(sel.Manifest.Tokens[key]); value != "" {
		return value
	}
	return fallback
}

func mergeStrings(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return override
	}
	out := make(map[string]string, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range override {
		out[key] = value
	}
	return out
}
