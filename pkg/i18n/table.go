package i18n

// Translation keys used by the widget and the custom theme markup.
const (
	KeyInstructionsVisual = "instructions_visual"
	KeyInstructionsAudio  = "instructions_audio"
	KeyPlayAgain          = "play_again"
	KeyCantHearThis       = "cant_hear_this"
	KeyVisualChallenge    = "visual_challenge"
	KeyAudioChallenge     = "audio_challenge"
	KeyRefreshBtn         = "refresh_btn"
	KeyHelpBtn            = "help_btn"
	KeyIncorrectTryAgain  = "incorrect_try_again"
)

// DefaultLanguage is the language of DefaultTable.
const DefaultLanguage = "en"

// Table maps translation keys to display strings.
type Table map[string]string

// Clone returns an independent copy.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for key, value := range t {
		out[key] = value
	}
	return out
}

// Overlay copies every non-empty entry of other into t.
func (t Table) Overlay(other map[string]string) Table {
	for key, value := range other {
		if value == "" {
			continue
		}
		t[key] = value
	}
	return t
}

// Keys lists the translation keys in the order the widget documents them.
func Keys() []string {
	return []string{
		KeyInstructionsVisual,
		KeyInstructionsAudio,
		KeyPlayAgain,
		KeyCantHearThis,
		KeyVisualChallenge,
		KeyAudioChallenge,
		KeyRefreshBtn,
		KeyHelpBtn,
		KeyIncorrectTryAgain,
	}
}

// DefaultTable returns a fresh copy of the English strings.
func DefaultTable() Table {
	return Table{
		KeyInstructionsVisual: "Enter the words above:",
		KeyInstructionsAudio:  "Type what you hear:",
		KeyPlayAgain:          "Play sound again",
		KeyCantHearThis:       "Download sound as MP3",
		KeyVisualChallenge:    "Get an image CAPTCHA",
		KeyAudioChallenge:     "Get an audio CAPTCHA",
		KeyRefreshBtn:         "Get another CAPTCHA",
		KeyHelpBtn:            "Help",
		KeyIncorrectTryAgain:  "Incorrect, please try again.",
	}
}

var builtInLanguages = []string{"en", "nl", "fr", "de", "pt", "ru", "es", "tr"}

// BuiltInLanguages lists the languages the widget translates on its own.
func BuiltInLanguages() []string {
	out := make([]string, len(builtInLanguages))
	copy(out, builtInLanguages)
	return out
}

// IsBuiltIn reports whether the widget ships strings for language.
func IsBuiltIn(language string) bool {
	for _, code := range builtInLanguages {
		if code == language {
			return true
		}
	}
	return false
}
