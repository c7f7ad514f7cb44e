package render

import (
	"embed"
	"html/template"
	"io"
	"net/http"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// WriteHTML renders the page view model to its HTML representation.
func WriteHTML(w io.Writer, page Page) error {
	return pageTemplate.Execute(w, page)
}

// StaticHandler serves the embedded static assets (fallback image).
func StaticHandler() http.Handler {
	return http.FileServer(http.FS(staticFS))
}
