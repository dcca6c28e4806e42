// Package web holds the page served at the site root.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

func IndexTemplate() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/index.html")
}
