// Package clientlang derives the two-letter language code the widget expects
// from a browser's Accept-Language header. It is deliberately kept apart from
// the resolver: callers decide whether the client preference should override
// their configured language.
package clientlang

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// HeaderName is the request header consulted by FromRequest.
const HeaderName = "Accept-Language"

// FromHeader returns the lowercase base language of the most preferred tag in
// an Accept-Language value, or "" when nothing usable is present.
func FromHeader(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return ""
	}
	for _, tag := range tags {
		// Only explicit languages count; "und" would otherwise infer English.
		base, confidence := tag.Base()
		if confidence != language.Exact {
			continue
		}
		code := strings.ToLower(base.String())
		if len(code) == 2 {
			return code
		}
	}
	return ""
}

// FromRequest reads the Accept-Language header of r.
func FromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	return FromHeader(r.Header.Get(HeaderName))
}
