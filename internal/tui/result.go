package tui

import "strings"

// resultModel reports the outcome of an encrypt or decrypt run.
type resultModel struct {
	title   string
	lines   []string
	warning string
}

func (m resultModel) View() string {
	var b strings.Builder

	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.warning != "" {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render("Warning: " + m.warning))
		b.WriteString("\n")
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), "enter / esc: back to menu")
}
