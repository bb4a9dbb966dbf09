package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type cipherMode int

const (
	modeEncrypt cipherMode = iota
	modeDecrypt
)

// cipherFormModel collects the passphrase and the input/output file paths
// for an encrypt or decrypt run.
type cipherFormModel struct {
	mode       cipherMode
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newCipherFormModel(mode cipherMode) cipherFormModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].EchoMode = textinput.EchoPassword
	inputs[0].EchoCharacter = '•'
	inputs[0].Focus()

	if mode == modeEncrypt {
		inputs[1].Placeholder = "photo.png"
		inputs[2].Placeholder = "photo.enc"
	} else {
		inputs[1].Placeholder = "photo.enc"
		inputs[2].Placeholder = "photo_decrypted"
	}

	return cipherFormModel{mode: mode, inputs: inputs}
}

func (m cipherFormModel) passphrase() string { return m.inputs[0].Value() }
func (m cipherFormModel) inputPath() string  { return strings.TrimSpace(m.inputs[1].Value()) }
func (m cipherFormModel) outputPath() string { return strings.TrimSpace(m.inputs[2].Value()) }

func (m cipherFormModel) View() string {
	title := "ENCRYPT AN IMAGE"
	if m.mode == modeDecrypt {
		title = "DECRYPT AN IMAGE"
	}

	var b strings.Builder
	b.WriteString("Passphrase:  [" + m.inputs[0].View() + "]\n")
	b.WriteString("Input file:  [" + m.inputs[1].View() + "]\n")
	b.WriteString("Output file: [" + m.inputs[2].View() + "]\n")
	if m.submitting {
		b.WriteString("\nWorking...")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: run │ tab: next field │ esc: back")
}
