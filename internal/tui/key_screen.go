package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// keyScreenModel derives and displays the key for a passphrase so it can be
// shared out of band or stored in a password manager.
type keyScreenModel struct {
	input      textinput.Model
	derivedKey string
	status     string
	submitting bool
}

func newKeyScreenModel() keyScreenModel {
	input := textinput.New()
	input.Width = 50
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Focus()
	return keyScreenModel{input: input}
}

func (m keyScreenModel) View() string {
	var b strings.Builder

	b.WriteString("Passphrase: [" + m.input.View() + "]\n")
	if m.derivedKey != "" {
		b.WriteString("\nDerived key:\n")
		b.WriteString(m.derivedKey)
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString("\nWorking...")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	hotkeys := "enter: derive │ esc: back"
	if m.derivedKey != "" {
		hotkeys = "enter: derive │ c: copy key │ esc: back"
	}
	return renderPage("DERIVE A KEY", strings.TrimRight(b.String(), "\n"), hotkeys)
}
