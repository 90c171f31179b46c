// Package view renders the server-side HTML pages. Templates are embedded in
// the binary and plugged into Echo through its Renderer interface.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var files embed.FS

type Renderer struct {
	templates *template.Template
}

func New() *Renderer {
	return &Renderer{templates: template.Must(template.ParseFS(files, "templates/*.html"))}
}

// Render implements echo.Renderer. The name is the template file name, e.g.
// "movielist.html".
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
