// Package render turns page view models into HTML.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"vado.sa/internal/animation"
	"vado.sa/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer executes the page templates
type Renderer struct {
	home     *template.Template
	project  *template.Template
	notFound *template.Template
}

// New parses the embedded templates
func New() (*Renderer, error) {
	home, err := parse("home.html")
	if err != nil {
		return nil, err
	}
	project, err := parse("project.html")
	if err != nil {
		return nil, err
	}
	notFound, err := parse("notfound.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{home: home, project: project, notFound: notFound}, nil
}

func parse(page string) (*template.Template, error) {
	t, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", page, err)
	}
	return t, nil
}

// Home renders the home page
func (r *Renderer) Home(w io.Writer, page services.HomePage) error {
	return r.home.ExecuteTemplate(w, "layout", page)
}

// Project renders a project detail page
func (r *Renderer) Project(w io.Writer, page services.ProjectPage) error {
	return r.project.ExecuteTemplate(w, "layout", page)
}

// NotFound renders the not-found page
func (r *Renderer) NotFound(w io.Writer, page services.NotFoundPage) error {
	return r.notFound.ExecuteTemplate(w, "layout", page)
}

// Static returns the embedded CSS and JS, rooted at the static directory
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var funcs = template.FuncMap{
	"motion":      motionAttrs,
	"animations":  animation.Export,
	"projectPath": services.ProjectPath,
	"inc":         func(i int) int { return i + 1 },
	"required": func(names []string, name string) bool {
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return false
	},
}

// motionAttrs renders the data attributes the browser runtime reads
func motionAttrs(m services.Motion) template.HTMLAttr {
	var b strings.Builder
	fmt.Fprintf(&b, `data-motion="%s"`, m.Preset)
	if m.Children != nil {
		fmt.Fprintf(&b, ` data-motion-children="%s"`, *m.Children)
	}
	if m.OnLoad {
		b.WriteString(` data-motion-onload="true"`)
	} else {
		fmt.Fprintf(&b, ` data-motion-amount="%s" data-motion-once="%t"`,
			strconv.FormatFloat(m.Viewport.Amount, 'f', -1, 64), m.Viewport.Once)
	}
	return template.HTMLAttr(b.String())
}
