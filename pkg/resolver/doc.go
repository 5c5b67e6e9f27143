// Package resolver turns RecaptchaOptions into the snippet a page embeds
// before the widget loader: a script assigning the options object, plus the
// markup container when the custom theme is selected. An empty result means
// the widget keeps its own default look.
package resolver
