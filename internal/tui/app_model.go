package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Vyshusym/image-encryption/internal/adapter"
	"github.com/Vyshusym/image-encryption/internal/imaging"
	"github.com/Vyshusym/image-encryption/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenMenu screen = iota
	screenEncrypt
	screenDecrypt
	screenKey
	screenResult
)

type appModel struct {
	ctx           context.Context
	server        adapter.ServerAdapter
	buildInfo     models.AppBuildInfo
	currentScreen screen

	menu      menuModel
	form      cipherFormModel
	keyScreen keyScreenModel
	result    resultModel

	serverVersion string
	showBuildInfo bool

	err          error
	showError    bool
	errorOverlay errorOverlayModel
}

func newAppModel(ctx context.Context, server adapter.ServerAdapter, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		server:        server,
		buildInfo:     buildInfo,
		currentScreen: screenMenu,
		menu:          newMenuModel(),
		keyScreen:     newKeyScreenModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) && (m.currentScreen == screenMenu || msg.String() == "ctrl+c") {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case cipherDoneMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.result = cipherResult(m.form.mode, msg)
		m.currentScreen = screenResult
		return m, nil
	case keyDerivedMsg:
		m.keyScreen.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.keyScreen.derivedKey = msg.key
		return m, nil
	case versionLoadedMsg:
		if msg.err != nil {
			m.serverVersion = "unreachable"
		} else {
			m.serverVersion = msg.version
		}
		return m, nil
	case copiedMsg:
		m.keyScreen.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.keyScreen.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenEncrypt, screenDecrypt:
		return m.updateCipherForm(msg)
	case screenKey:
		return m.updateKeyScreen(msg)
	case screenResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch {
	case m.showBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	case m.currentScreen == screenMenu:
		body = m.menu.View()
	case m.currentScreen == screenEncrypt, m.currentScreen == screenDecrypt:
		body = m.form.View()
	case m.currentScreen == screenKey:
		body = m.keyScreen.View()
	case m.currentScreen == screenResult:
		body = m.result.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(m.menu.items)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
		return m, m.cmdLoadServerVersion()
	case key.Matches(keyMsg, keys.enter):
		switch m.menu.idx {
		case 0:
			m.form = newCipherFormModel(modeEncrypt)
			m.currentScreen = screenEncrypt
		case 1:
			m.form = newCipherFormModel(modeDecrypt)
			m.currentScreen = screenDecrypt
		case 2:
			m.keyScreen = newKeyScreenModel()
			m.currentScreen = screenKey
		}
	}

	return m, nil
}

func (m appModel) updateCipherForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = focusNext(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = focusPrev(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			if m.form.inputPath() == "" || m.form.outputPath() == "" {
				m.showErrorf("Input and output file paths are required")
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdRunCipher(m.form)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateKeyScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.copy):
			if m.keyScreen.derivedKey != "" {
				return m, cmdCopyToClipboard(m.keyScreen.derivedKey)
			}
		case key.Matches(keyMsg, keys.enter):
			if m.keyScreen.submitting {
				return m, nil
			}
			m.keyScreen.submitting = true
			m.keyScreen.derivedKey = ""
			return m, m.cmdDeriveKey(m.keyScreen.input.Value())
		}
	}

	var cmd tea.Cmd
	m.keyScreen.input, cmd = m.keyScreen.input.Update(msg)
	return m, cmd
}

func (m appModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
		m.currentScreen = screenMenu
	}
	return m, nil
}

func (m appModel) cmdRunCipher(form cipherFormModel) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		payload, err := os.ReadFile(form.inputPath())
		if err != nil {
			return cipherDoneMsg{err: fmt.Errorf("read input file: %w", err)}
		}

		if form.mode == modeEncrypt {
			token, err := server.EncryptImage(ctx, form.passphrase(), payload)
			if err != nil {
				return cipherDoneMsg{err: err}
			}
			outputPath := form.outputPath()
			if err = os.WriteFile(outputPath, token, 0o600); err != nil {
				return cipherDoneMsg{err: fmt.Errorf("write output file: %w", err)}
			}
			return cipherDoneMsg{outputPath: outputPath}
		}

		img, err := server.DecryptImage(ctx, form.passphrase(), payload)
		if err != nil {
			return cipherDoneMsg{err: err}
		}
		outputPath := decryptedOutputPath(form.outputPath(), img.Format)
		if err = os.WriteFile(outputPath, img.Data, 0o600); err != nil {
			return cipherDoneMsg{err: fmt.Errorf("write output file: %w", err)}
		}
		return cipherDoneMsg{outputPath: outputPath, format: img.Format}
	}
}

func (m appModel) cmdDeriveKey(passphrase string) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		key, err := server.DeriveKey(ctx, passphrase)
		return keyDerivedMsg{key: key, err: err}
	}
}

func (m appModel) cmdLoadServerVersion() tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		version, err := server.GetServerVersion(ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return keyDerivedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cipherResult(mode cipherMode, msg cipherDoneMsg) resultModel {
	if mode == modeEncrypt {
		return resultModel{
			title: "ENCRYPTION COMPLETE",
			lines: []string{"Encrypted file saved to " + msg.outputPath},
		}
	}

	result := resultModel{
		title: "DECRYPTION COMPLETE",
		lines: []string{"Decrypted file saved to " + msg.outputPath},
	}
	if msg.format == "" {
		result.warning = "decrypted data is not a recognised image; the passphrase may not match the original"
	} else {
		result.lines = append(result.lines, "Detected format: "+msg.format)
	}
	return result
}

// decryptedOutputPath appends the sniffed format's extension when the user
// gave a bare path without one.
func decryptedOutputPath(path, format string) string {
	if format == "" || filepath.Ext(path) != "" {
		return path
	}
	return path + "." + imaging.Ext(format)
}

func focusNext(m cipherFormModel) cipherFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrev(m cipherFormModel) cipherFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
