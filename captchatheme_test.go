package captchatheme_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	captchatheme "github.com/goliatone/go-captchatheme"
	"github.com/goliatone/go-captchatheme/pkg/themes"
)

func TestRenderCustomTheme(t *testing.T) {
	out, err := captchatheme.Render(context.Background(), "custom", map[string]any{
		"custom_theme_widget": "signup_captcha",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `"custom_theme_widget":"signup_captcha"`) {
		t.Fatalf("expected widget id in options, got %q", out)
	}
	if !strings.Contains(out, `id="signup_captcha"`) {
		t.Fatalf("expected widget container, got %q", out)
	}
}

func TestRenderDefaultsIsEmpty(t *testing.T) {
	out, err := captchatheme.Render(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestNewResolverWithSelector(t *testing.T) {
	r, err := captchatheme.NewResolver(captchatheme.WithThemeSelector(themes.NewCatalog()))
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}
	out, err := r.Render(context.Background(), captchatheme.Request{ThemeName: "clean"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `"theme":"clean"`) {
		t.Fatalf("expected clean theme, got %q", out)
	}
}

func TestEmbeddedAssets(t *testing.T) {
	for _, name := range []string{themes.ScriptTemplate, themes.WidgetTemplate} {
		if _, err := fs.Stat(captchatheme.EmbeddedTemplates(), name); err != nil {
			t.Fatalf("expected embedded template %s: %v", name, err)
		}
	}
	if _, err := fs.Stat(captchatheme.EmbeddedTranslations(), "translations.it.yaml"); err != nil {
		t.Fatalf("expected embedded translation: %v", err)
	}
}
