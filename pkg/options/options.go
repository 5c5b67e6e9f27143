package options

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Known RecaptchaOptions keys, in the order they are serialized.
const (
	KeyTheme              = "theme"
	KeyLang               = "lang"
	KeyCustomTranslations = "custom_translations"
	KeyCustomThemeWidget  = "custom_theme_widget"
	KeyTabIndex           = "tabindex"
)

const (
	// DefaultTheme is the widget's own built-in look.
	DefaultTheme = "red"
	// DefaultLang is the language the widget assumes when none is configured.
	DefaultLang = "en"
)

// Record is the RecaptchaOptions payload handed to the widget loader. Empty
// strings and nil maps mean the key is absent.
type Record struct {
	Theme              string
	Lang               string
	CustomTranslations map[string]string
	CustomThemeWidget  string
	TabIndex           int
	// Extra holds caller supplied keys the widget understands but this package
	// does not model. They are serialized after the known keys.
	Extra map[string]any
}

// Defaults returns the record a resolver starts from.
func Defaults() Record {
	return Record{
		Theme: DefaultTheme,
		Lang:  DefaultLang,
	}
}

// Merge applies overrides on top of the record. It is a shallow merge: every
// present key replaces the current value, nested maps included. A nil value
// unsets the key. Values with the wrong type for a known key are ignored.
func (r *Record) Merge(overrides map[string]any) {
	if r == nil || len(overrides) == 0 {
		return
	}

	for rawKey, value := range overrides {
		key := strings.TrimSpace(rawKey)
		switch key {
		case "":
			continue
		case KeyTheme:
			if s, ok := stringValue(value); ok {
				r.Theme = s
			}
		case KeyLang:
			if s, ok := stringValue(value); ok {
				r.Lang = strings.ToLower(s)
			}
		case KeyCustomThemeWidget:
			if s, ok := stringValue(value); ok {
				r.CustomThemeWidget = s
			}
		case KeyCustomTranslations:
			if value == nil {
				r.CustomTranslations = nil
				continue
			}
			if table, ok := translationsValue(value); ok {
				r.CustomTranslations = table
			}
		case KeyTabIndex:
			if value == nil {
				r.TabIndex = 0
				continue
			}
			if n, ok := intValue(value); ok {
				r.TabIndex = n
			}
		default:
			if value == nil {
				delete(r.Extra, key)
				continue
			}
			if r.Extra == nil {
				r.Extra = make(map[string]any)
			}
			r.Extra[key] = value
		}
	}
}

// HasCustomizations reports whether any key other than the theme differs from
// Defaults.
func (r Record) HasCustomizations() bool {
	return r.Lang != DefaultLang ||
		r.CustomTranslations != nil ||
		r.CustomThemeWidget != "" ||
		r.TabIndex != 0 ||
		len(r.Extra) > 0
}

// Clone returns a copy that shares no maps with the receiver. Extra values are
// copied shallowly.
func (r Record) Clone() Record {
	out := r
	if r.CustomTranslations != nil {
		out.CustomTranslations = make(map[string]string, len(r.CustomTranslations))
		for key, value := range r.CustomTranslations {
			out.CustomTranslations[key] = value
		}
	}
	if r.Extra != nil {
		out.Extra = make(map[string]any, len(r.Extra))
		for key, value := range r.Extra {
			out.Extra[key] = value
		}
	}
	return out
}

// MarshalJSON encodes the record as an object literal with a stable key order.
// The output is HTML safe so it can be placed inside a script element.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	write := func(key string, value any) error {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("options: encode %q: %w", key, err)
		}
		name, err := json.Marshal(key)
		if err != nil {
			return fmt.Errorf("options: encode key %q: %w", key, err)
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(encoded)
		return nil
	}

	if r.Theme != "" {
		if err := write(KeyTheme, r.Theme); err != nil {
			return nil, err
		}
	}
	if r.Lang != "" {
		if err := write(KeyLang, r.Lang); err != nil {
			return nil, err
		}
	}
	if r.CustomTranslations != nil {
		if err := write(KeyCustomTranslations, r.CustomTranslations); err != nil {
			return nil, err
		}
	}
	if r.CustomThemeWidget != "" {
		if err := write(KeyCustomThemeWidget, r.CustomThemeWidget); err != nil {
			return nil, err
		}
	}
	if err := write(KeyTabIndex, r.TabIndex); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(r.Extra))
	for key := range r.Extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := write(key, r.Extra[key]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func stringValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", true
	case string:
		return strings.TrimSpace(v), true
	default:
		return "", false
	}
}

func translationsValue(value any) (map[string]string, bool) {
	switch v := value.(type) {
	case map[string]string:
		out := make(map[string]string, len(v))
		for key, msg := range v {
			out[key] = msg
		}
		return out, true
	case map[string]any:
		out := make(map[string]string, len(v))
		for key, raw := range v {
			if msg, ok := raw.(string); ok {
				out[key] = msg
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func intValue(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int64ToInt(v)
	case uint:
		return uint64ToInt(uint64(v))
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return uint64ToInt(uint64(v))
	case uint64:
		return uint64ToInt(v)
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int64ToInt(n)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Values outside the int range are rejected rather than wrapped.
func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	// float64(math.MaxInt) rounds up to 2^63, itself out of range.
	if f < float64(math.MinInt) || f >= float64(math.MaxInt) {
		return 0, false
	}
	return int(f), true
}

func int64ToInt(n int64) (int, bool) {
	if n < int64(math.MinInt) || n > int64(math.MaxInt) {
		return 0, false
	}
	return int(n), true
}

func uint64ToInt(n uint64) (int, bool) {
	if n > uint64(math.MaxInt) {
		return 0, false
	}
	return int(n), true
}
