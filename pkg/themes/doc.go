// Package themes describes the looks the CAPTCHA widget supports. The four
// standard themes only need the RecaptchaOptions script; the custom theme also
// needs a markup container the widget script can find by id. Each theme is a
// go-theme manifest so callers can swap templates or the default widget id
// through the same selector contract other go-theme consumers use.
package themes
