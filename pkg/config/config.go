package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-captchatheme/pkg/resolver"
)

// ErrEmpty is returned for a configuration document with no content.
var ErrEmpty = errors.New("config: document is empty")

// File mirrors the captcha configuration document.
type File struct {
	Theme           string         `yaml:"theme" json:"theme"`
	TranslationsDir string         `yaml:"translations_dir" json:"translations_dir"`
	TemplatesDir    string         `yaml:"templates_dir" json:"templates_dir"`
	Options         map[string]any `yaml:"options" json:"options"`
}

// Load reads a YAML or JSON configuration file. Relative directories are
// resolved against the directory holding the file.
func Load(path string) (*File, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("config: path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data, path)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	cfg.TranslationsDir = resolveDir(base, cfg.TranslationsDir)
	cfg.TemplatesDir = resolveDir(base, cfg.TemplatesDir)
	return cfg, nil
}

// Parse decodes a configuration document. JSON is tried first, then YAML.
func Parse(data []byte, source string) (*File, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, source)
	}

	var cfg File
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = File{}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", source, err)
		}
	}

	cfg.Theme = strings.TrimSpace(cfg.Theme)
	cfg.TranslationsDir = strings.TrimSpace(cfg.TranslationsDir)
	cfg.TemplatesDir = strings.TrimSpace(cfg.TemplatesDir)
	return &cfg, nil
}

// Defaults returns the values the resolver should start from: the options
// map with the theme key applied on top.
func (f *File) Defaults() map[string]any {
	if f == nil {
		return nil
	}
	out := make(map[string]any, len(f.Options)+1)
	for key, value := range f.Options {
		out[key] = value
	}
	if f.Theme != "" {
		out["theme"] = f.Theme
	}
	return out
}

// ResolverOptions translates the file into resolver options.
func (f *File) ResolverOptions() []resolver.Option {
	if f == nil {
		return nil
	}
	opts := []resolver.Option{resolver.WithDefaults(f.Defaults())}
	if f.TranslationsDir != "" {
		opts = append(opts, resolver.WithTranslationsDir(f.TranslationsDir))
	}
	if f.TemplatesDir != "" {
		opts = append(opts, resolver.WithTemplatesDir(f.TemplatesDir))
	}
	return opts
}

func resolveDir(base, dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}
