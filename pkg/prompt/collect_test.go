package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-captchatheme/pkg/options"
	"github.com/goliatone/go-captchatheme/pkg/themes"
)

type stubDriver struct {
	inputs     []string
	selectIdx  []int
	confirm    []bool
	inputPos   int
	selectPos  int
	confirmPos int

	inputCfgs  []InputConfig
	selectCfgs []SelectConfig
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputCfgs = append(s.inputCfgs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectCfgs = append(s.selectCfgs, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func TestCollectStandardTheme(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{indexOf(themes.Names(), themes.White)},
		inputs:    []string{"FR", "0"},
		confirm:   []bool{true},
	}

	got, err := Collect(context.Background(), driver, options.Defaults())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := Answers{
		ThemeName: themes.White,
		Options:   map[string]any{options.KeyLang: "fr", options.KeyTabIndex: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("answers mismatch (-want +got):\n%s", diff)
	}
	if len(driver.inputCfgs) != 2 {
		t.Fatalf("standard theme should not ask for a widget id, got %d inputs", len(driver.inputCfgs))
	}
	if driver.selectCfgs[0].DefaultIndex != indexOf(themes.Names(), themes.Red) {
		t.Fatalf("expected default theme preselected, got index %d", driver.selectCfgs[0].DefaultIndex)
	}
}

func TestCollectCustomTheme(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{indexOf(themes.Names(), themes.Custom)},
		inputs:    []string{"it", " captcha_box ", "5"},
		confirm:   []bool{true},
	}

	got, err := Collect(context.Background(), driver, options.Defaults())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := Answers{
		ThemeName: themes.Custom,
		Options: map[string]any{
			options.KeyLang:              "it",
			options.KeyCustomThemeWidget: "captcha_box",
			options.KeyTabIndex:          5,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("answers mismatch (-want +got):\n%s", diff)
	}
	if driver.inputCfgs[1].Default != themes.DefaultWidgetID {
		t.Fatalf("expected widget id default %q, got %q", themes.DefaultWidgetID, driver.inputCfgs[1].Default)
	}
}

func TestCollectKeepsExplicitZeroTabIndex(t *testing.T) {
	defaults := options.Defaults()
	defaults.TabIndex = 5
	driver := &stubDriver{
		selectIdx: []int{0},
		inputs:    []string{"en", "0"},
		confirm:   []bool{true},
	}

	got, err := Collect(context.Background(), driver, defaults)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if v, ok := got.Options[options.KeyTabIndex]; !ok || v != 0 {
		t.Fatalf("expected tabindex 0 to be kept, got %#v", got.Options)
	}
	if driver.inputCfgs[1].Default != "5" {
		t.Fatalf("expected tab index default 5, got %q", driver.inputCfgs[1].Default)
	}

	driver = &stubDriver{
		selectIdx: []int{0},
		inputs:    []string{"en", " "},
		confirm:   []bool{true},
	}
	got, err = Collect(context.Background(), driver, defaults)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if _, ok := got.Options[options.KeyTabIndex]; ok {
		t.Fatalf("blank tab index must leave the record alone, got %#v", got.Options)
	}
}

func TestCollectDeclined(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{0},
		inputs:    []string{"en", ""},
		confirm:   []bool{false},
	}
	if _, err := Collect(context.Background(), driver, options.Defaults()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestCollectRejectsInvalidAnswers(t *testing.T) {
	cases := map[string]*stubDriver{
		"bad language": {selectIdx: []int{0}, inputs: []string{"english"}},
		"bad tabindex": {selectIdx: []int{0}, inputs: []string{"en", "two"}},
		"bad select":   {selectIdx: []int{-1}},
	}
	for name, driver := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Collect(context.Background(), driver, options.Defaults()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestCollectWrapsDriverAbort(t *testing.T) {
	driver := abortDriver{}
	_, err := Collect(context.Background(), driver, options.Defaults())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected wrapped ErrAborted, got %v", err)
	}
}

type abortDriver struct{}

func (abortDriver) Input(context.Context, InputConfig) (string, error) { return "", ErrAborted }

func (abortDriver) Confirm(context.Context, ConfirmConfig) (bool, error) { return false, ErrAborted }

func (abortDriver) Select(context.Context, SelectConfig) (int, error) { return 0, ErrAborted }

func TestValidators(t *testing.T) {
	if err := validateLanguage("Pt"); err != nil {
		t.Fatalf("expected Pt to be accepted: %v", err)
	}
	if err := validateLanguage("p1"); err == nil {
		t.Fatal("expected p1 to be rejected")
	}
	if err := validateTabIndex(" "); err != nil {
		t.Fatalf("empty tab index should be accepted: %v", err)
	}
}
