// Package web holds the server-rendered pages of the site.
package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var files embed.FS

// Renderer executes the embedded templates for echo.
type Renderer struct {
	t *template.Template
}

// NewRenderer parses every page once at startup.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"youtube": func(v string) bool { return v == "youtube" },
	}).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{t: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.t.ExecuteTemplate(w, name, data)
}
