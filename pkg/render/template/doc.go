// Package template defines the renderer-agnostic template contract. The
// gotemplate subpackage provides the default pongo2 implementation.
package template
