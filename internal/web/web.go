// Package web holds the HTML shells served for the site routes. The
// interactive parts of each page talk to the JSON API.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

func Templates() (*template.Template, error) {
	return template.ParseFS(files, "templates/*.html")
}
