package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the wilayah banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text, color string
	}{
		{" __      __ _  _                 _     ", "#34d399"},
		{" \\ \\    / /(_)| | __ _  _  _ __ _| |_   ", "#2dd4bf"},
		{"  \\ \\/\\/ / | || |/ _` || || / _` | ' \\  ", "#22d3ee"},
		{"   \\_/\\_/  |_||_|\\__,_| \\_, \\__,_|_||_| ", "#38bdf8"},
		{"                        |__/            ", "#60a5fa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
