package template

import (
	"io"
)

// TemplateRenderer is the seam the resolver renders snippets through. Engines
// load named templates from their own source and may also render inline
// template content.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
