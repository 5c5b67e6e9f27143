package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-captchatheme/pkg/clientlang"
	"github.com/goliatone/go-captchatheme/pkg/config"
	"github.com/goliatone/go-captchatheme/pkg/options"
	"github.com/goliatone/go-captchatheme/pkg/prompt"
	"github.com/goliatone/go-captchatheme/pkg/resolver"
)

type cliFlags struct {
	configPath     string
	theme          string
	lang           string
	acceptLanguage string
	widget         string
	tabIndex       int
	translations   string
	templates      string
	interactive    bool
	output         string

	// set records the flags given on the command line.
	set map[string]bool
}

func parseFlags(fs *flag.FlagSet, args []string) (cliFlags, error) {
	var f cliFlags
	fs.StringVar(&f.configPath, "config", "", "YAML or JSON configuration file")
	fs.StringVar(&f.theme, "theme", "", "theme to render (red, white, blackglass, clean, custom)")
	fs.StringVar(&f.lang, "lang", "", "widget language code")
	fs.StringVar(&f.acceptLanguage, "accept-language", "", "Accept-Language header used when -lang is empty")
	fs.StringVar(&f.widget, "widget", "", "element id of the custom theme widget")
	fs.IntVar(&f.tabIndex, "tabindex", 0, "tab index of the response field")
	fs.StringVar(&f.translations, "translations", "", "directory holding translations.<lang>.yaml files")
	fs.StringVar(&f.templates, "templates", "", "directory holding script and widget templates")
	fs.BoolVar(&f.interactive, "interactive", false, "ask for the options in the terminal")
	fs.StringVar(&f.output, "output", "", "output file (stdout if empty)")

	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}
	f.set = map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

func newResolver(f cliFlags) (*resolver.Resolver, error) {
	var cfg *config.File
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	return resolver.New(buildOptions(cfg, f)...)
}

// buildOptions layers the command line on top of the configuration file.
// Directory flags only win when they were given.
func buildOptions(cfg *config.File, f cliFlags) []resolver.Option {
	opts := cfg.ResolverOptions()
	if f.set["translations"] {
		opts = append(opts, resolver.WithTranslationsDir(f.translations))
	}
	if f.set["templates"] {
		opts = append(opts, resolver.WithTemplatesDir(f.templates))
	}
	return opts
}

func (f cliFlags) request() resolver.Request {
	return resolver.Request{
		ThemeName: strings.TrimSpace(f.theme),
		Options:   f.overrides(),
	}
}

// overrides only carries flags that were set so configuration file values
// survive.
func (f cliFlags) overrides() map[string]any {
	out := map[string]any{}
	lang := strings.TrimSpace(f.lang)
	if lang == "" {
		lang = clientlang.FromHeader(f.acceptLanguage)
	}
	if lang != "" {
		out[options.KeyLang] = lang
	}
	if widget := strings.TrimSpace(f.widget); widget != "" {
		out[options.KeyCustomThemeWidget] = widget
	}
	if f.set["tabindex"] {
		out[options.KeyTabIndex] = f.tabIndex
	}
	return out
}

func collect(ctx context.Context, r *resolver.Resolver, req resolver.Request) (resolver.Request, error) {
	return collectWith(ctx, prompt.NewSurveyDriver(), r, req)
}

// collectWith asks the user, starting from everything configured so far.
// Answers override config and flag values.
func collectWith(ctx context.Context, driver prompt.Driver, r *resolver.Resolver, req resolver.Request) (resolver.Request, error) {
	defaults := r.Options()
	defaults.Merge(req.Options)
	if req.ThemeName != "" {
		defaults.Theme = req.ThemeName
	}

	answers, err := prompt.Collect(ctx, driver, defaults)
	if err != nil {
		return req, err
	}

	merged := make(map[string]any, len(req.Options)+len(answers.Options))
	for key, value := range req.Options {
		merged[key] = value
	}
	for key, value := range answers.Options {
		merged[key] = value
	}
	return resolver.Request{ThemeName: answers.ThemeName, Options: merged}, nil
}

// writeSnippet writes snippet to path, or to stdout when path is empty. An
// empty snippet writes nothing and reports false.
func writeSnippet(path, snippet string, stdout io.Writer) (bool, error) {
	if snippet == "" {
		return false, nil
	}
	if path != "" {
		if err := os.WriteFile(path, []byte(snippet+"\n"), 0o644); err != nil {
			return false, err
		}
		return true, nil
	}
	if _, err := fmt.Fprintln(stdout, snippet); err != nil {
		return false, err
	}
	return true, nil
}
