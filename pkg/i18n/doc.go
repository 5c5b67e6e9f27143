// Package i18n resolves the strings shown by the CAPTCHA widget. Every table
// starts from the nine English defaults; languages the widget does not
// translate itself are overlaid with a translations.<lang>.<ext> resource
// (YAML or JSON) found through a Loader. Lookups are memoized per language on
// the Lookup that performed them.
package i18n
