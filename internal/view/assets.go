package view

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the embedded template set.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.tmpl")
}

// StaticFS returns the embedded static assets rooted at static/.
func StaticFS() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
