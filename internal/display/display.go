// Package display renders the console output printed when the server
// starts: the banner and a short status block.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	// BannerStyle — muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	routeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))
)

// Field is one label/value line of the status block.
type Field struct {
	Label string
	Value string
}

// Route describes one HTTP endpoint for the status block.
type Route struct {
	Method string
	Path   string
}

// Routes lists the endpoints the server exposes, in display order.
var Routes = []Route{
	{"POST", "/parse"},
	{"POST", "/entry"},
	{"GET", "/summary?name="},
	{"GET", "/entries"},
	{"GET", "/healthz"},
}

// RenderStatus formats the fields and routes as an aligned block.
func RenderStatus(fields []Field, routes []Route) string {
	width := 0
	for _, f := range fields {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}

	var b strings.Builder
	for _, f := range fields {
		label := fmt.Sprintf("  %-*s", width, f.Label)
		b.WriteString(labelStyle.Render(label))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(f.Value))
		b.WriteByte('\n')
	}
	if len(routes) > 0 {
		b.WriteByte('\n')
	}
	for _, r := range routes {
		b.WriteString(routeStyle.Render(fmt.Sprintf("  %-5s %s", r.Method, r.Path)))
		b.WriteByte('\n')
	}
	return b.String()
}
