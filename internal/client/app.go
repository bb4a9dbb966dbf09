package client

import (
	"context"

	"github.com/Vyshusym/image-encryption/internal/logger"
	"github.com/Vyshusym/image-encryption/internal/tui"
)

type App struct {
	ui     *tui.TUI
	logger *logger.Logger
}

func NewApp(ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{ui: ui, logger: logger}, nil
}

func (a *App) Run() error {
	a.logger.Info().Msg("starting interactive session")
	return a.ui.Run(context.Background())
}
