// Package web renders the filter page as server-side HTML.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/aretw0/wilayah/pkg/domain"
)

//go:embed templates/*.html templates/style.css
var assets embed.FS

// DefaultHeading is the title of the left panel.
const DefaultHeading = "Frontend Assessment"

// Renderer holds the parsed page templates.
type Renderer struct {
	page        *template.Template
	unavailable *template.Template
	heading     string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHeading replaces the left panel title.
func WithHeading(h string) Option {
	return func(r *Renderer) {
		if h != "" {
			r.heading = h
		}
	}
}

// NewRenderer parses the embedded templates.
func NewRenderer(opts ...Option) (*Renderer, error) {
	page, err := template.ParseFS(assets,
		"templates/layout.html", "templates/page.html",
		"templates/breadcrumb.html", "templates/detail.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	unavailable, err := template.ParseFS(assets, "templates/layout.html", "templates/unavailable.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse unavailable template: %w", err)
	}
	r := &Renderer{page: page, unavailable: unavailable, heading: DefaultHeading}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Page renders the filter page for v.
func (r *Renderer) Page(w io.Writer, v domain.View) error {
	return execute(w, r.page, NewPageData(v, r.heading))
}

// Unavailable renders the neutral "data unavailable" page.
func (r *Renderer) Unavailable(w io.Writer) error {
	return execute(w, r.unavailable, struct{ Title string }{Title: "Wilayah"})
}

// execute buffers the output so a template error never leaves a half-written page.
func execute(w io.Writer, t *template.Template, data any) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// StyleSheet returns the page stylesheet.
func StyleSheet() []byte {
	b, _ := assets.ReadFile("templates/style.css")
	return b
}
