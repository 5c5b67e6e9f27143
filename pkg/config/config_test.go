package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-captchatheme/pkg/resolver"
)

func TestParseYAML(t *testing.T) {
	doc := []byte(`
theme: custom
translations_dir: lang
options:
  lang: it
  tabindex: 3
  custom_theme_widget: my_widget
`)
	cfg, err := Parse(doc, "captcha.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := &File{
		Theme:           "custom",
		TranslationsDir: "lang",
		Options: map[string]any{
			"lang":                "it",
			"tabindex":            3,
			"custom_theme_widget": "my_widget",
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSON(t *testing.T) {
	doc := []byte(`{"theme":" white ","options":{"tabindex":2}}`)
	cfg, err := Parse(doc, "captcha.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Theme != "white" {
		t.Fatalf("expected trimmed theme, got %q", cfg.Theme)
	}
	if got := cfg.Options["tabindex"]; got != float64(2) {
		t.Fatalf("expected tabindex 2, got %#v", got)
	}
}

func TestParseRejectsEmptyAndInvalid(t *testing.T) {
	if _, err := Parse([]byte("  \n"), "empty.yaml"); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if _, err := Parse([]byte("theme: [unterminated"), "bad.yaml"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadResolvesRelativeDirs(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "abs-templates")
	doc := "theme: red\ntranslations_dir: lang\ntemplates_dir: " + abs + "\n"
	path := filepath.Join(dir, "captcha.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TranslationsDir != filepath.Join(dir, "lang") {
		t.Fatalf("unexpected translations dir %q", cfg.TranslationsDir)
	}
	if cfg.TemplatesDir != abs {
		t.Fatalf("unexpected templates dir %q", cfg.TemplatesDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestDefaultsThemeWins(t *testing.T) {
	cfg := &File{
		Theme:   "white",
		Options: map[string]any{"theme": "clean", "lang": "fr"},
	}
	want := map[string]any{"theme": "white", "lang": "fr"}
	if diff := cmp.Diff(want, cfg.Defaults()); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if cfg.Options["theme"] != "clean" {
		t.Fatal("Defaults must not mutate the options map")
	}
}

func TestResolverOptionsSeedRecord(t *testing.T) {
	cfg := &File{
		Theme:   "clean",
		Options: map[string]any{"lang": "fr", "tabindex": 4},
	}
	r, err := resolver.New(cfg.ResolverOptions()...)
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}
	record := r.Options()
	if record.Theme != "clean" || record.Lang != "fr" || record.TabIndex != 4 {
		t.Fatalf("unexpected record %+v", record)
	}
}

func TestResolverOptionsKeepTranslationsDirWhenLaterDirsAreEmpty(t *testing.T) {
	dir := t.TempDir()
	trDir := filepath.Join(dir, "tr")
	if err := os.MkdirAll(trDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(trDir, "translations.sv.yml"), []byte("refresh_btn: \"Ladda om\"\n"), 0o600); err != nil {
		t.Fatalf("write translations: %v", err)
	}
	path := filepath.Join(dir, "captcha.yaml")
	if err := os.WriteFile(path, []byte("theme: custom\ntranslations_dir: tr\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	opts := append(cfg.ResolverOptions(),
		resolver.WithTranslationsDir(""),
		resolver.WithTemplatesDir(""),
	)
	r, err := resolver.New(opts...)
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	out, err := r.Render(context.Background(), resolver.Request{Options: map[string]any{"lang": "sv"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Ladda om") {
		t.Fatalf("expected translations from the config dir, got:\n%s", out)
	}
}
