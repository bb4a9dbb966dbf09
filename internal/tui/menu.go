package tui

import "strings"

type menuModel struct {
	items []string
	idx   int
}

func newMenuModel() menuModel {
	return menuModel{
		items: []string{"Encrypt an image", "Decrypt an image", "Derive a key"},
	}
}

func (m menuModel) View() string {
	var b strings.Builder

	b.WriteString("Choose an action:\n\n")
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(item)
		b.WriteString("\n")
	}

	return renderPage(
		"IMAGE ENCRYPTION",
		strings.TrimRight(b.String(), "\n"),
		"enter: select │ ↑/↓: navigate │ v: version │ q: quit",
	)
}
