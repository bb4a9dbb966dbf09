package tui

import (
	"context"

	"github.com/Vyshusym/image-encryption/internal/adapter"
	"github.com/Vyshusym/image-encryption/internal/logger"
	"github.com/Vyshusym/image-encryption/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	server    adapter.ServerAdapter
	buildInfo models.AppBuildInfo
}

func New(server adapter.ServerAdapter, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{server: server, buildInfo: buildInfo}, nil
}

// Run drives the interactive session until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.server, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && result.err != ErrUserQuit {
		return result.err
	}
	return nil
}
