package resolver

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in script and custom widget templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
