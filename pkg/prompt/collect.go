package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-captchatheme/pkg/options"
	"github.com/goliatone/go-captchatheme/pkg/themes"
)

// Answers is what an interactive session produced, ready for a
// resolver.Request.
type Answers struct {
	ThemeName string
	Options   map[string]any
}

// Collect walks the user through theme, language, widget id (custom theme
// only) and tab index, starting from defaults. A declined final confirmation
// returns ErrAborted.
func Collect(ctx context.Context, driver Driver, defaults options.Record) (Answers, error) {
	if driver == nil {
		return Answers{}, errors.New("prompt: driver is nil")
	}

	names := themes.Names()
	idx, err := driver.Select(ctx, SelectConfig{
		Message:      "Theme",
		Options:      names,
		DefaultIndex: indexOf(names, defaults.Theme),
		Help:         "custom renders the widget markup alongside the options script",
	})
	if err != nil {
		return Answers{}, fmt.Errorf("prompt: theme: %w", err)
	}
	if idx < 0 || idx >= len(names) {
		return Answers{}, fmt.Errorf("prompt: theme: invalid selection %d", idx)
	}
	answers := Answers{
		ThemeName: names[idx],
		Options:   map[string]any{},
	}

	lang, err := driver.Input(ctx, InputConfig{
		Message:   "Language",
		Default:   defaults.Lang,
		Help:      "two letter language code, e.g. en or it",
		Validator: validateLanguage,
	})
	if err != nil {
		return Answers{}, fmt.Errorf("prompt: language: %w", err)
	}
	if err := validateLanguage(lang); err != nil {
		return Answers{}, fmt.Errorf("prompt: language: %w", err)
	}
	answers.Options[options.KeyLang] = strings.ToLower(strings.TrimSpace(lang))

	if answers.ThemeName == themes.Custom {
		widgetDefault := defaults.CustomThemeWidget
		if widgetDefault == "" {
			widgetDefault = themes.DefaultWidgetID
		}
		widget, err := driver.Input(ctx, InputConfig{
			Message: "Widget element id",
			Default: widgetDefault,
		})
		if err != nil {
			return Answers{}, fmt.Errorf("prompt: widget id: %w", err)
		}
		if widget = strings.TrimSpace(widget); widget != "" {
			answers.Options[options.KeyCustomThemeWidget] = widget
		}
	}

	tab, err := driver.Input(ctx, InputConfig{
		Message:   "Tab index",
		Default:   strconv.Itoa(defaults.TabIndex),
		Validator: validateTabIndex,
	})
	if err != nil {
		return Answers{}, fmt.Errorf("prompt: tab index: %w", err)
	}
	if err := validateTabIndex(tab); err != nil {
		return Answers{}, fmt.Errorf("prompt: tab index: %w", err)
	}
	if tab = strings.TrimSpace(tab); tab != "" {
		n, _ := strconv.Atoi(tab)
		answers.Options[options.KeyTabIndex] = n
	}

	ok, err := driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Render %s theme?", answers.ThemeName),
		Default: true,
	})
	if err != nil {
		return Answers{}, fmt.Errorf("prompt: confirm: %w", err)
	}
	if !ok {
		return Answers{}, ErrAborted
	}
	return answers, nil
}

func validateLanguage(value string) error {
	value = strings.ToLower(strings.TrimSpace(value))
	if len(value) != 2 || value[0] < 'a' || value[0] > 'z' || value[1] < 'a' || value[1] > 'z' {
		return fmt.Errorf("language %q must be two letters", value)
	}
	return nil
}

func validateTabIndex(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if _, err := strconv.Atoi(value); err != nil {
		return fmt.Errorf("tab index %q is not a number", value)
	}
	return nil
}
