package tui

import (
	"github.com/charmbracelet/glamour"
)

// RenderFunc turns markdown into terminal output.
type RenderFunc func(string) (string, error)

// NewRenderer returns a function that renders markdown using glamour.
// Word wrap is disabled when width <= 0.
func NewRenderer(width int) RenderFunc {
	opts := []glamour.TermRendererOption{
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return Plain
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// NewStyledRenderer renders with a fixed glamour style ("dark", "light", "notty").
func NewStyledRenderer(style string) RenderFunc {
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style))
	if err != nil {
		return Plain
	}
	return r.Render
}

// Plain returns the markdown unchanged, for pipes and tests.
func Plain(markdown string) (string, error) {
	return markdown, nil
}
