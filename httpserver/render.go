package httpserver

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html static/*
var assets embed.FS

const placeholderPoster = "/static/placeholder.svg"

var pages = []string{"search", "detail"}

type templateRenderer struct {
	templates map[string]*template.Template
}

func newRenderer() *templateRenderer {
	printer := message.NewPrinter(language.English)
	funcs := template.FuncMap{
		"number": func(n int) string {
			return printer.Sprintf("%d", n)
		},
	}

	r := &templateRenderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		r.templates[name] = template.Must(template.New(name).Funcs(funcs).ParseFS(assets,
			"templates/layout.html",
			"templates/"+name+".html",
		))
	}
	return r
}

func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("render: unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

func (s *Server) RegisterStaticRoutes() {
	s.Router.StaticFS("/static", echo.MustSubFS(assets, "static"))
}
