package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/specialistvlad/optiongraph/internal/engine"
)

func (a *App) render(s *engine.Snapshot) error {
	if a.config.Output == "json" {
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	_, err := io.WriteString(a.outW, renderText(lipgloss.NewRenderer(a.outW), s))
	return err
}

// renderText draws the summary lists followed by one line per node.
// Colours degrade to plain text when w is not a terminal.
func renderText(r *lipgloss.Renderer, s *engine.Snapshot) string {
	var (
		title    = r.NewStyle().Bold(true).Underline(true)
		enabled  = r.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
		disabled = r.NewStyle().Faint(true).Strikethrough(true)
		hidden   = r.NewStyle().Faint(true)
		visible  = r.NewStyle()
	)

	var b strings.Builder
	list := func(name string, ids []string) {
		b.WriteString(title.Render(name))
		b.WriteString("\n")
		if len(ids) == 0 {
			b.WriteString("  (none)\n")
		}
		for _, id := range ids {
			st, _ := s.State(id)
			fmt.Fprintf(&b, "  - %s\n", st.Label)
		}
		b.WriteString("\n")
	}
	list("Selected", s.Selected)
	list("Requirements", s.Requirements)
	list("Suggestions", s.Suggestions)

	width := 0
	for _, st := range s.States {
		width = max(width, len(st.ID))
	}

	b.WriteString(title.Render("Nodes"))
	b.WriteString("\n")
	for _, st := range s.States {
		mark, status, style := "-", "visible", visible
		switch {
		case st.Disabled:
			mark, status, style = "x", "disabled", disabled
		case st.Enabled:
			mark, status, style = "*", "enabled", enabled
		case !st.Visible:
			mark, status, style = ".", "hidden", hidden
		}
		if st.UserEnabled {
			status += " (user)"
		}
		fmt.Fprintf(&b, "  %s %-*s  %s\n", mark, width, st.ID, style.Render(status))
	}
	fmt.Fprintf(&b, "\n%d links\n", len(s.Links))
	return b.String()
}
