// Package options holds the RecaptchaOptions record: the defaults a resolver
// starts from, the shallow merge applied for every render call, and the JSON
// encoding embedded into the page. Known keys (theme, lang,
// custom_translations, custom_theme_widget, tabindex) are typed fields while
// anything else a caller passes is carried through untouched in Extra.
package options
